package factory

import (
	"fmt"

	"github.com/automoto/actionrpg/assets/animations"
	"github.com/automoto/actionrpg/components"
	cfg "github.com/automoto/actionrpg/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// facingDown is the facing every character starts with.
var facingDown = dmath.Vec2{X: 0, Y: 1}

// GenerateAnimations builds an AnimationData from the definitions config
// holds for key (e.g., "player", "bat") and starts it in initial.
func GenerateAnimations(key, initial string) (components.AnimationData, error) {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		return components.AnimationData{}, fmt.Errorf("no animation definitions for %q", key)
	}

	animData := components.AnimationData{
		Animations: make(map[string]*animations.Animation, len(defs)),
		Blend:      facingDown,
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	animData.Travel(initial)
	return animData, nil
}
