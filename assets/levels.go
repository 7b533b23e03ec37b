package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// Rect is an axis-aligned box in level pixels, top-left anchored.
type Rect struct {
	X, Y, Width, Height float64
}

type PlayerSpawn struct {
	X, Y float64
}

type EnemySpawn struct {
	X, Y      float64
	EnemyType string
}

// Level is everything the world scene needs from a map file. Walls and
// grass come from rectangle objects; spawns are point objects.
type Level struct {
	Name         string
	Width        int
	Height       int
	Walls        []Rect
	Grass        []Rect
	PlayerSpawns []PlayerSpawn
	EnemySpawns  []EnemySpawn
}

// LevelLoader reads Tiled maps out of a file system.
type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader returns a loader over the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: levelFS}
}

// NewLevelLoaderFS returns a loader over fsys, with maps under "levels/".
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LevelNames lists the .tmx files available, sorted.
func (l *LevelLoader) LevelNames() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel parses levels/<name>.
func (l *LevelLoader) LoadLevel(name string) (Level, error) {
	levelPath := path.Join("levels", name)
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := Level{
		Name:   name,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "Grass":
			for _, o := range og.Objects {
				level.Grass = append(level.Grass, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				enemyType := o.Properties.GetString("enemyType")
				if enemyType == "" {
					enemyType = "bat"
				}
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{X: o.X, Y: o.Y, EnemyType: enemyType})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return Level{}, fmt.Errorf("level %s: %w", levelPath, ErrNoPlayerSpawn)
	}
	return level, nil
}

// MustLoadLevel is LoadLevel, panicking on error.
func (l *LevelLoader) MustLoadLevel(name string) Level {
	level, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}
