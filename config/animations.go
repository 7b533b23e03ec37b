package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
}

// Effect kinds spawned into the level.
const (
	EffectHit        = "hit"
	EffectEnemyDeath = "enemy_death"
	EffectGrass      = "grass"
)

// CharacterAnimations maps a character key (e.g., "player") to its
// animation definitions, keyed by animation state.
var CharacterAnimations = map[string]map[string]AnimationDef{
	"player": {
		"Idle":   {First: 0, Last: 0, Step: 1, Speed: 10},
		"Run":    {First: 0, Last: 5, Step: 1, Speed: 5},
		"Roll":   {First: 0, Last: 4, Step: 1, Speed: 4},
		"Attack": {First: 0, Last: 3, Step: 1, Speed: 4},
	},
	"bat": {
		"Fly": {First: 0, Last: 4, Step: 1, Speed: 6},
	},
	"effect": {
		EffectHit:        {First: 0, Last: 1, Step: 1, Speed: 4},
		EffectEnemyDeath: {First: 0, Last: 9, Step: 1, Speed: 3},
		EffectGrass:      {First: 0, Last: 4, Step: 1, Speed: 3},
	},
}
