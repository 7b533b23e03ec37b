package factory

import (
	"fmt"
	"log"

	"github.com/automoto/actionrpg/actor"
	"github.com/automoto/actionrpg/archetypes"
	"github.com/automoto/actionrpg/assets"
	"github.com/automoto/actionrpg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})
	return entry
}

// PopulateLevel spawns walls, grass, the player and the enemies of level.
// Each enemy gets its own random stream derived from seed, so a seed
// replays the same level. It returns the player.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level, seed uint64) (*donburi.Entry, error) {
	if len(level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("level %s: %w", level.Name, assets.ErrNoPlayerSpawn)
	}

	for _, w := range level.Walls {
		CreateWall(ecs, w.X, w.Y, w.Width, w.Height)
	}
	for _, g := range level.Grass {
		CreateGrass(ecs, g.X, g.Y, g.Width, g.Height)
	}

	spawn := level.PlayerSpawns[0]
	player, err := CreatePlayer(ecs, dmath.Vec2{X: spawn.X, Y: spawn.Y})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}

	for i, s := range level.EnemySpawns {
		rnd := actor.NewRandom(seed, uint64(i))
		if _, err := CreateEnemy(ecs, s.EnemyType, dmath.Vec2{X: s.X, Y: s.Y}, rnd); err != nil {
			return nil, fmt.Errorf("level %s enemy %d: %w", level.Name, i, err)
		}
	}

	log.Printf("level %s: %d walls, %d grass, %d enemies", level.Name, len(level.Walls), len(level.Grass), len(level.EnemySpawns))
	return player, nil
}
