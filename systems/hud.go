package systems

import (
	"fmt"

	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's hearts in the top-left corner, and the
// remaining bats under them.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HealthUI.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HealthUI.Get(hudEntry)

	size := float32(cfg.UI.HeartSize)
	for i := 0; i < hud.MaxHearts; i++ {
		c := cfg.UI.HeartEmptyColor
		if i < hud.Hearts {
			c = cfg.UI.HeartFullColor
		}
		x := float32(cfg.UI.HeartMargin) + float32(i)*(size+float32(cfg.UI.HeartGap))
		vector.FillRect(screen, x, float32(cfg.UI.HeartMargin), size, size, c, false)
	}

	bats := 0
	components.Enemy.Each(ecs.World, func(*donburi.Entry) { bats++ })
	y := int(cfg.UI.HeartMargin+cfg.UI.HeartSize) + int(cfg.UI.HUDFontSize) + 2
	text.Draw(screen, fmt.Sprintf("Bats: %d", bats), fonts.HUD.Get(), int(cfg.UI.HeartMargin), y, cfg.White)
}
