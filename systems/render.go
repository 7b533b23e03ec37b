package systems

import (
	"image/color"

	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	"github.com/automoto/actionrpg/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// view maps world coordinates onto the screen and culls what is off it.
type view struct {
	offset     dmath.Vec2
	minX, maxX float64
	minY, maxY float64
}

// cullPadding keeps things that are partly on screen from popping.
const cullPadding = 32.0

func viewOf(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	halfW := float64(screen.Bounds().Dx()) / 2
	halfH := float64(screen.Bounds().Dy()) / 2
	return view{
		offset: dmath.Vec2{X: halfW - camera.Position.X, Y: halfH - camera.Position.Y},
		minX:   camera.Position.X - halfW - cullPadding,
		maxX:   camera.Position.X + halfW + cullPadding,
		minY:   camera.Position.Y - halfH - cullPadding,
		maxY:   camera.Position.Y + halfH + cullPadding,
	}, true
}

func (v view) visible(o *resolv.Object) bool {
	return o.X+o.W >= v.minX && o.X <= v.maxX && o.Y+o.H >= v.minY && o.Y <= v.maxY
}

func (v view) fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x+v.offset.X), float32(y+v.offset.Y), float32(w), float32(h), c, false)
}

func (v view) fillCircle(screen *ebiten.Image, at dmath.Vec2, r float64, c color.Color) {
	vector.FillCircle(screen, float32(at.X+v.offset.X), float32(at.Y+v.offset.Y), float32(r), c, true)
}

// faded scales a colour by alpha, keeping it premultiplied.
func faded(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

func blinkAlpha(e *donburi.Entry) float32 {
	if !e.HasComponent(components.Blink) {
		return 1
	}
	return components.Blink.Get(e).Alpha
}

// DrawLevel paints the ground, the walls and the grass.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if v.visible(o) {
			v.fillRect(screen, o.X, o.Y, o.W, o.H, cfg.UI.WallColor)
		}
	})

	tags.Grass.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if !v.visible(o) {
			return
		}
		// Three blades per tuft.
		bladeW := o.W / 5
		for i := 0; i < 3; i++ {
			x := o.X + bladeW*(0.5+float64(i)*1.5)
			top := o.Y + o.H*0.2*float64(i%2)
			v.fillRect(screen, x, top, bladeW, o.Y+o.H-top, cfg.UI.GrassColor)
		}
	})
}

// DrawCharacters draws the bats and the player. Characters blink out while
// invincible.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.visible(o.Object) {
			drawBat(screen, v, e, o.Center())
		}
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.visible(o.Object) {
			drawPlayer(screen, v, e, o.Object)
		}
	})
}

func drawBat(screen *ebiten.Image, v view, e *donburi.Entry, at dmath.Vec2) {
	enemy := components.Enemy.Get(e)
	tint := cfg.Purple
	if t, ok := cfg.Enemy.Types[enemy.Kind]; ok {
		tint = t.TintColor
	}
	tint = faded(tint, blinkAlpha(e))

	// Wings open and close with the flight animation.
	span := 6.0
	anim := components.Animation.Get(e)
	if frames := enemy.Controller.Config().SpriteFrames; frames > 1 {
		span = 3 + 5*float64(anim.Frame()%frames)/float64(frames-1)
	}
	v.fillRect(screen, at.X-span, at.Y-4, span*2, 3, tint)
	v.fillCircle(screen, at, 3, tint)
}

func drawPlayer(screen *ebiten.Image, v view, e *donburi.Entry, o *resolv.Object) {
	ctrl := components.Player.Get(e).Controller
	alpha := blinkAlpha(e)
	body := faded(cfg.UI.PlayerColor, alpha)

	hurt := components.Hurtbox.Get(e).Object
	switch ctrl.State() {
	case actor.PlayerRoll:
		// Curled up while rolling.
		v.fillCircle(screen, dmath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}, o.W/2+1, body)
	default:
		v.fillRect(screen, hurt.X, hurt.Y, hurt.W, hurt.H, body)
	}

	// The eye looks the way the player faces.
	facing := ctrl.RollVector()
	eye := dmath.Vec2{X: hurt.X + hurt.W/2 + facing.X*3, Y: hurt.Y + 4 + facing.Y*2}
	v.fillCircle(screen, eye, 1.5, faded(cfg.White, alpha))

	if sword := components.Hitbox.Get(e); sword.Active {
		s := sword.Object
		v.fillRect(screen, s.X, s.Y, s.W, s.H, faded(cfg.UI.SwordColor, alpha))
	}
}

var effectColors = map[string]color.RGBA{
	cfg.EffectHit:        cfg.White,
	cfg.EffectEnemyDeath: cfg.Purple,
	cfg.EffectGrass:      cfg.GrassGreen,
}

// DrawEffects draws hit sparks, death puffs and cut grass. Each grows with
// its animation.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(ecs, screen)
	if !ok {
		return
	}

	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.Object) {
			return
		}
		fx := components.Effect.Get(e)
		c := faded(effectColors[fx.Kind], fx.Alpha)

		progress := 1.0
		if anim := components.Animation.Get(e).CurrentAnimation; anim != nil && anim.Last > anim.First {
			progress = float64(anim.Frame()-anim.First+1) / float64(anim.Last-anim.First+1)
		}
		r := o.W / 2 * progress

		if fx.Kind == cfg.EffectGrass {
			// Clippings scatter outward.
			at := o.Center()
			for _, d := range []dmath.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}} {
				v.fillRect(screen, at.X+d.X*r-1, at.Y+d.Y*r-1, 2, 2, c)
			}
			return
		}
		v.fillCircle(screen, o.Center(), r, c)
	})
}
