package assets

import (
	"encoding/binary"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/automoto/actionrpg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedWorldLevel(t *testing.T) {
	loader := NewLevelLoader()

	names, err := loader.LevelNames()
	require.NoError(t, err)
	require.Contains(t, names, "world.tmx")

	level, err := loader.LoadLevel("world.tmx")
	require.NoError(t, err)

	assert.Equal(t, 640, level.Width)
	assert.Equal(t, 384, level.Height)
	assert.Len(t, level.PlayerSpawns, 1)
	assert.NotEmpty(t, level.Walls)
	assert.NotEmpty(t, level.Grass)
	require.NotEmpty(t, level.EnemySpawns)
	for _, s := range level.EnemySpawns {
		assert.Equal(t, "bat", s.EnemyType)
	}
}

const bareMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <objectgroup id="1" name="EnemySpawn">
  <object id="1" x="8" y="8">
   <point/>
  </object>
 </objectgroup>
%s
</map>
`

func TestLoadLevelRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(fmt.Sprintf(bareMap, ""))},
	}

	_, err := NewLevelLoaderFS(fsys).LoadLevel("empty.tmx")

	require.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestEnemySpawnDefaultsToBat(t *testing.T) {
	spawn := ` <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="16" y="16">
   <point/>
  </object>
 </objectgroup>`
	fsys := fstest.MapFS{
		"levels/small.tmx": {Data: []byte(fmt.Sprintf(bareMap, spawn))},
	}

	level, err := NewLevelLoaderFS(fsys).LoadLevel("small.tmx")

	require.NoError(t, err)
	require.Len(t, level.EnemySpawns, 1)
	assert.Equal(t, "bat", level.EnemySpawns[0].EnemyType)
	assert.Equal(t, PlayerSpawn{X: 16, Y: 16}, level.PlayerSpawns[0])
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := NewLevelLoaderFS(fstest.MapFS{}).LoadLevel("nope.tmx")
	require.Error(t, err)
}

func TestSynthesizeWAVHeader(t *testing.T) {
	tone := config.Tone{StartHz: 440, EndHz: 220, Seconds: 0.125, Volume: 0.5}

	data := SynthesizeWAV(tone, 8000)

	samples := 1000
	require.Len(t, data, wavHeaderSize+samples*2)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, uint32(36+samples*2), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[20:22]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[22:24]))
	assert.Equal(t, uint32(8000), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, "data", string(data[36:40]))
	assert.Equal(t, uint32(samples*2), binary.LittleEndian.Uint32(data[40:44]))
}

func TestSynthesizeWAVDecaysAndStaysInVolume(t *testing.T) {
	tone := config.Tone{StartHz: 300, EndHz: 300, Seconds: 0.05, Volume: 0.4, Noise: 0.5}

	data := SynthesizeWAV(tone, 8000)
	pcm := data[wavHeaderSize:]

	limit := int16(0.4*32767) + 1
	var first, last int
	n := len(pcm) / 2
	for i := range n {
		s := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		assert.LessOrEqual(t, s, limit)
		assert.GreaterOrEqual(t, s, -limit)
		if i < n/4 {
			first = max(first, abs(int(s)))
		}
		if i >= n-n/10 {
			last = max(last, abs(int(s)))
		}
	}
	assert.Greater(t, first, last, "the tail is quieter than the attack")
}

func TestSynthesizeWAVIsDeterministic(t *testing.T) {
	tone := config.Sound.Tones[config.SoundGrass]
	assert.Equal(t, SynthesizeWAV(tone, 22050), SynthesizeWAV(tone, 22050))
}

func TestEveryConfiguredSoundRenders(t *testing.T) {
	for id, tone := range config.Sound.Tones {
		data := SynthesizeWAV(tone, config.Audio.SampleRate)
		assert.Greater(t, len(data), wavHeaderSize, "sound %d", id)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
