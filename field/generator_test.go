package field_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"fieldgen/field"
)

type scenario struct {
	Name   string  `yaml:"name"`
	Seed   int64   `yaml:"seed"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Proba  float64 `yaml:"proba"`
	Want   string  `yaml:"want"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)
	var out []scenario
	require.NoError(t, yaml.Unmarshal(raw, &out))
	require.NotEmpty(t, out)
	return out
}

func generateString(t *testing.T, cfg field.Config) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := field.Generate(cfg, &buf)
	require.NoError(t, err)
	return buf.String()
}

// TestGenerate_Scenarios checks exact serialized output for fixed configs.
func TestGenerate_Scenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			cfg := field.Config{Seed: sc.Seed, Width: sc.Width, Height: sc.Height, AliveProbability: sc.Proba}
			assert.Equal(t, sc.Want, generateString(t, cfg))
		})
	}
}

// GeneratorSuite checks the structural properties of generated fields.
type GeneratorSuite struct {
	suite.Suite
	configs []field.Config
}

func (s *GeneratorSuite) SetupSuite() {
	s.configs = []field.Config{
		{Seed: 0, Width: 1, Height: 1, AliveProbability: 0.5},
		{Seed: 3, Width: 17, Height: 5, AliveProbability: 0.1},
		{Seed: -8, Width: 40, Height: 40, AliveProbability: 0.5},
		{Seed: 1 << 40, Width: 7, Height: 300, AliveProbability: 0.9},
	}
}

// TestDeterminism verifies two independent runs are byte-identical.
func (s *GeneratorSuite) TestDeterminism() {
	for _, cfg := range s.configs {
		first := generateString(s.T(), cfg)
		second := generateString(s.T(), cfg)
		s.Require().Equal(first, second, "config %+v", cfg)
	}
}

// TestHeaderAndTokenCount verifies the header echoes the dimensions and the
// stream holds exactly 2+W*H tokens, all cells drawn from {0,1}.
func (s *GeneratorSuite) TestHeaderAndTokenCount() {
	for _, cfg := range s.configs {
		out := generateString(s.T(), cfg)
		tokens := strings.Fields(out)
		s.Require().Len(tokens, 2+cfg.Width*cfg.Height)
		s.Equal(strconv.Itoa(cfg.Width), tokens[0])
		s.Equal(strconv.Itoa(cfg.Height), tokens[1])
		for i, tok := range tokens[2:] {
			s.Require().True(tok == "0" || tok == "1", "cell %d = %q", i, tok)
		}
	}
}

// TestSeparators verifies every token is trailed by exactly one space and no
// other whitespace appears.
func (s *GeneratorSuite) TestSeparators() {
	for _, cfg := range s.configs {
		out := generateString(s.T(), cfg)
		s.Require().True(strings.HasSuffix(out, " "))
		s.NotContains(out, "  ")
		s.NotContains(out, "\n")
		s.Equal(2+cfg.Width*cfg.Height, strings.Count(out, " "))
	}
}

// TestBoundaryProbabilities verifies p=0 and p=1 regardless of seed.
func (s *GeneratorSuite) TestBoundaryProbabilities() {
	for _, cfg := range s.configs {
		cfg.AliveProbability = 0
		for _, tok := range strings.Fields(generateString(s.T(), cfg))[2:] {
			s.Require().Equal("0", tok)
		}
		cfg.AliveProbability = 1
		for _, tok := range strings.Fields(generateString(s.T(), cfg))[2:] {
			s.Require().Equal("1", tok)
		}
	}
}

// TestStats verifies the returned counters agree with the output.
func (s *GeneratorSuite) TestStats() {
	for _, cfg := range s.configs {
		var buf bytes.Buffer
		stats, err := field.Generate(cfg, &buf)
		s.Require().NoError(err)
		s.Equal(cfg.Cells(), stats.Cells)
		s.Equal(int64(buf.Len()), stats.Bytes)
		var alive int64
		for _, tok := range strings.Fields(buf.String())[2:] {
			if tok == "1" {
				alive++
			}
		}
		s.Equal(alive, stats.Alive)
		s.InDelta(float64(stats.Alive)/float64(stats.Cells), stats.AliveRatio(), 1e-12)
	}
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

// fixedSource replays a fixed list of draws and counts how many were taken.
type fixedSource struct {
	draws []float64
	taken int
}

func (f *fixedSource) Float64() float64 {
	v := f.draws[f.taken%len(f.draws)]
	f.taken++
	return v
}

// TestGenerateWith_DrawCount verifies exactly W*H draws per run.
func TestGenerateWith_DrawCount(t *testing.T) {
	cases := []struct{ w, h int }{{1, 1}, {5, 3}, {3, 5}, {64, 64}}
	for _, tc := range cases {
		src := &fixedSource{draws: []float64{0.25, 0.75}}
		var buf bytes.Buffer
		_, err := field.GenerateWith(field.Config{Width: tc.w, Height: tc.h, AliveProbability: 0.5}, src, &buf)
		require.NoError(t, err)
		assert.Equal(t, tc.w*tc.h, src.taken, "%dx%d", tc.w, tc.h)
	}
}

// TestGenerateWith_TieIsDead verifies a draw equal to the probability is dead.
func TestGenerateWith_TieIsDead(t *testing.T) {
	src := &fixedSource{draws: []float64{0.3, 0.29999999999999993, 0.30000000000000004}}
	var buf bytes.Buffer
	stats, err := field.GenerateWith(field.Config{Width: 3, Height: 1, AliveProbability: 0.3}, src, &buf)
	require.NoError(t, err)
	assert.Equal(t, "3 1 0 1 0 ", buf.String())
	assert.EqualValues(t, 1, stats.Alive)
}

// TestGenerateWith_RowMajor verifies draws are consumed row by row.
func TestGenerateWith_RowMajor(t *testing.T) {
	// Row 0 gets draws 0..2, row 1 gets 3..5.
	src := &fixedSource{draws: []float64{0, 0.9, 0.9, 0.9, 0.9, 0}}
	var buf bytes.Buffer
	_, err := field.GenerateWith(field.Config{Width: 3, Height: 2, AliveProbability: 0.5}, src, &buf)
	require.NoError(t, err)
	assert.Equal(t, "3 2 1 0 0 0 0 1 ", buf.String())
}

// TestGenerate_NaNProbability verifies NaN never marks a cell alive.
func TestGenerate_NaNProbability(t *testing.T) {
	cfg := field.Config{Seed: 1, Width: 4, Height: 1, AliveProbability: math.NaN()}
	assert.Equal(t, "4 1 0 0 0 0 ", generateString(t, cfg))
}

// TestGenerate_InvalidDimensions verifies non-positive sizes are rejected
// before anything reaches the sink.
func TestGenerate_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"NegativeWidth", -1, 3},
		{"NegativeHeight", 3, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := field.Generate(field.Config{Width: tc.w, Height: tc.h, AliveProbability: 0.5}, &buf)
			require.Error(t, err)
			assert.True(t, errors.Is(err, field.ErrInvalidArgument), "got %v", err)
			assert.Zero(t, buf.Len())
		})
	}
}

var errSinkFull = errors.New("sink full")

// failingWriter accepts limit bytes and then fails.
type failingWriter struct {
	limit   int
	written int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	room := f.limit - f.written
	if room <= 0 {
		return 0, errSinkFull
	}
	if len(p) > room {
		f.written += room
		return room, errSinkFull
	}
	f.written += len(p)
	return len(p), nil
}

// TestGenerate_SinkFailure verifies write errors surface as ErrIO and keep
// the underlying cause.
func TestGenerate_SinkFailure(t *testing.T) {
	w := &failingWriter{limit: 100}
	stats, err := field.Generate(field.Config{Width: 500, Height: 500, AliveProbability: 0.5}, w)
	require.Error(t, err)
	assert.True(t, errors.Is(err, field.ErrIO))
	assert.True(t, errors.Is(err, errSinkFull))
	assert.EqualValues(t, 100, stats.Bytes)
}

func TestConfig_ProbabilityInRange(t *testing.T) {
	cases := []struct {
		p    float64
		want bool
	}{
		{0, true}, {0.1, true}, {1, true}, {-0.01, false}, {1.01, false}, {math.NaN(), false}, {math.Inf(1), false},
	}
	for _, tc := range cases {
		cfg := field.DefaultConfig()
		cfg.AliveProbability = tc.p
		assert.Equal(t, tc.want, cfg.ProbabilityInRange(), "p=%v", tc.p)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := field.DefaultConfig()
	assert.Equal(t, field.Config{Seed: 0, Width: 1000, Height: 1000, AliveProbability: 0.1}, cfg)
	assert.NoError(t, cfg.Validate())
	assert.EqualValues(t, 1_000_000, cfg.Cells())
}
