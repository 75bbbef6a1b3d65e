package level

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	engine "github.com/jason-s-yu/tripeaks/engine"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLevel = `{
  "Playfield": [
    {"CardFace": 12, "CardSuit": 0, "Position": {"x": 250, "y": 1000}},
    {"CardFace": 2,  "CardSuit": 1, "Position": {"x": 300, "y": 800}}
  ],
  "Stack": [
    {"CardFace": 0, "CardSuit": 2},
    {"CardFace": 3, "CardSuit": 3}
  ]
}`

func TestParseConvertsFaces(t *testing.T) {
	cfg, err := Parse([]byte(sampleLevel))
	require.NoError(t, err)

	require.Len(t, cfg.Playfield, 2)
	assert.Equal(t, engine.PlayfieldEntry{Rank: engine.RankKing, Suit: engine.SuitClubs, X: 250, Y: 1000}, cfg.Playfield[0])
	assert.Equal(t, engine.PlayfieldEntry{Rank: engine.RankThree, Suit: engine.SuitDiamonds, X: 300, Y: 800}, cfg.Playfield[1])

	require.Len(t, cfg.Stock, 2)
	assert.Equal(t, engine.StockEntry{Rank: engine.RankAce, Suit: engine.SuitHearts}, cfg.Stock[0])
	assert.Equal(t, engine.StockEntry{Rank: engine.RankFour, Suit: engine.SuitSpades}, cfg.Stock[1])
}

func TestParseMissingListsIsEmpty(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, cfg.Empty())
	assert.Empty(t, cfg.Stock)
}

func TestParseRejectsOutOfRange(t *testing.T) {
	tests := []string{
		`{"Playfield": [{"CardFace": 13, "CardSuit": 0}]}`,
		`{"Playfield": [{"CardFace": -1, "CardSuit": 0}]}`,
		`{"Stack": [{"CardFace": 0, "CardSuit": 4}]}`,
	}
	for _, data := range tests {
		_, err := Parse([]byte(data))
		assert.ErrorIs(t, err, ErrMalformed, data)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte(`{"Playfield": [`))
	assert.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	data := "Playfield:\n  - {CardFace: 4, CardSuit: 2, Position: {x: 540, y: 100}}\nStack:\n  - {CardFace: 5, CardSuit: 3}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []engine.PlayfieldEntry{{Rank: engine.RankFive, Suit: engine.SuitHearts, X: 540, Y: 100}}, cfg.Playfield)
	assert.Equal(t, []engine.StockEntry{{Rank: engine.RankSix, Suit: engine.SuitSpades}}, cfg.Stock)
}

func TestFromConfigRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(sampleLevel))
	require.NoError(t, err)
	back, err := FromConfig(cfg).Config()
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestGeneratePyramid(t *testing.T) {
	cfg := GeneratePyramid(rand.New(rand.NewPCG(1, 2)), 0)
	require.Len(t, cfg.Playfield, 15)
	assert.Len(t, cfg.Stock, DefaultStockSize)
	require.NoError(t, cfg.Validate())

	// Top row is a single card centred on the screen.
	assert.Equal(t, screenCenterX, cfg.Playfield[0].X)
	assert.Equal(t, pyramidTopY, cfg.Playfield[0].Y)

	// Same seed, same level.
	again := GeneratePyramid(rand.New(rand.NewPCG(1, 2)), 0)
	assert.Equal(t, cfg, again)
}

// TestGeneratedPyramidExposesBottomRow composes a generated level and
// checks only the five bottom-row cards start exposed.
func TestGeneratedPyramidExposesBottomRow(t *testing.T) {
	cfg := GeneratePyramid(rand.New(rand.NewPCG(3, 4)), 5)
	s, err := engine.Compose(cfg, engine.DefaultRules())
	require.NoError(t, err)

	var exposed []engine.CardID
	for _, id := range s.Playfield() {
		c, _ := s.Card(id)
		if c.FaceUp {
			exposed = append(exposed, id)
		}
	}
	assert.Equal(t, []engine.CardID{10, 11, 12, 13, 14}, exposed)
	assert.Equal(t, 4, s.StockCount())
}

func newTestSource(t *testing.T, path string) (*Source, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	return NewSource(path, 42, 10, logrus.NewEntry(logger)), hook
}

func TestSourceLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level1.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleLevel), 0o644))

	src, hook := newTestSource(t, path)
	cfg := src.Next()
	assert.Len(t, cfg.Playfield, 2)
	assert.Empty(t, hook.AllEntries(), "no warning expected for a good file")
}

func TestSourceFallsBack(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"Playfield": []}`), 0o644))
	noStack := filepath.Join(dir, "nostack.json")
	require.NoError(t, os.WriteFile(noStack, []byte(`{"Playfield": [{"CardFace": 1, "CardSuit": 1}]}`), 0o644))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`not json`), 0o644))

	for _, path := range []string{"", filepath.Join(dir, "missing.json"), empty, noStack, broken} {
		src, hook := newTestSource(t, path)
		cfg := src.Next()
		assert.Len(t, cfg.Playfield, 15, path)
		assert.Len(t, cfg.Stock, 10, path)
		require.NotNil(t, hook.LastEntry(), path)
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level, path)
	}
}
