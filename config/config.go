// Package config loads the game configuration from TOML
// Every field has a default, a missing file section keeps its defaults
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/fishgrid/components"
	"github.com/lixenwraith/fishgrid/constants"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the root of the TOML document
type Config struct {
	Grid    Grid    `toml:"grid"`
	Rules   Rules   `toml:"rules"`
	Log     Log     `toml:"log"`
	Metrics Metrics `toml:"metrics"`
	Tracing Tracing `toml:"tracing"`
	Audio   Audio   `toml:"audio"`
	Keys    Keys    `toml:"keys"`
}

// Grid sizes the board and its static population
type Grid struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Rocks  int `toml:"rocks"`
	Snails int `toml:"snails"`
}

// Rules tunes scoring, spawning and fish behavior
type Rules struct {
	Seed uint64 `toml:"seed"` // 0 picks a seed from the clock

	HighFishValue int `toml:"high_fish_value"`
	LowFishValue  int `toml:"low_fish_value"`
	HeartValue    int `toml:"heart_value"`

	FirstHeartTick   int `toml:"first_heart_tick"`
	HeartIntervalMin int `toml:"heart_interval_min"`
	HeartIntervalMax int `toml:"heart_interval_max"`
	HeartBatchMin    int `toml:"heart_batch_min"`
	HeartBatchMax    int `toml:"heart_batch_max"`

	ScaredChance     float64 `toml:"scared_chance"`
	ScaredMoveChance float64 `toml:"scared_move_chance"`
	CalmMoveChance   float64 `toml:"calm_move_chance"`
	FatigueThreshold int     `toml:"fatigue_threshold"`

	FallingRockChance  float64 `toml:"falling_rock_chance"`
	SnailCrawlInterval int     `toml:"snail_crawl_interval"`

	// StrictHomecoming only lets fish still missing wander home on their own
	StrictHomecoming bool `toml:"strict_homecoming"`

	// IdleTickMs ticks the game without input every N ms, 0 is turn-based
	IdleTickMs int `toml:"idle_tick_ms"`
}

// Log configures the slog output; an empty File discards logs
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Metrics configures the Prometheus endpoint; an empty Addr disables it
type Metrics struct {
	Addr string `toml:"addr"`
}

// Tracing configures tick spans written by the stdout exporter
type Tracing struct {
	Enabled     bool    `toml:"enabled"`
	File        string  `toml:"file"`
	ServiceName string  `toml:"service_name"`
	SampleRatio float64 `toml:"sample_ratio"`
}

// Audio configures cue playback
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // Relative, 0 is unchanged, negative is quieter
}

// Keys binds runes or key names to actions
type Keys struct {
	Up      []string `toml:"up"`
	Down    []string `toml:"down"`
	Left    []string `toml:"left"`
	Right   []string `toml:"right"`
	Wait    []string `toml:"wait"`
	Restart []string `toml:"restart"`
	Quit    []string `toml:"quit"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Grid: Grid{
			Width:  constants.DefaultGridWidth,
			Height: constants.DefaultGridHeight,
			Rocks:  constants.DefaultRockCount,
			Snails: constants.DefaultSnailCount,
		},
		Rules: DefaultRules(),
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Tracing: Tracing{
			File:        "logs/fishgrid-spans.json",
			ServiceName: "fishgrid",
			SampleRatio: 1,
		},
		Audio: Audio{
			Enabled: true,
		},
		Keys: Keys{
			Up:      []string{"Up", "k", "w"},
			Down:    []string{"Down", "j", "s"},
			Left:    []string{"Left", "h", "a"},
			Right:   []string{"Right", "l", "d"},
			Wait:    []string{"space", "."},
			Restart: []string{"r"},
			Quit:    []string{"q", "Esc", "Ctrl-C"},
		},
	}
}

// DefaultRules returns the stock gameplay tuning
func DefaultRules() Rules {
	return Rules{
		HighFishValue:      constants.HighFishValue,
		LowFishValue:       constants.LowFishValue,
		HeartValue:         constants.HeartValue,
		FirstHeartTick:     constants.FirstHeartTick,
		HeartIntervalMin:   constants.HeartIntervalMin,
		HeartIntervalMax:   constants.HeartIntervalMax,
		HeartBatchMin:      constants.HeartBatchMin,
		HeartBatchMax:      constants.HeartBatchMax,
		ScaredChance:       constants.ScaredChance,
		ScaredMoveChance:   constants.ScaredMoveChance,
		CalmMoveChance:     constants.CalmMoveChance,
		FatigueThreshold:   constants.FatigueThreshold,
		FallingRockChance:  constants.FallingRockChance,
		SnailCrawlInterval: constants.SnailCrawlInterval,
	}
}

// Award is the score for finding a fish of the given color, refunded when it is lost
func (r Rules) Award(color int) int {
	if components.PlayerFamily(color) {
		return r.HighFishValue
	}
	return r.LowFishValue
}

// Load reads a TOML file on top of the defaults and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every offending field at once
func (c Config) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	g, r := c.Grid, c.Rules
	check(g.Width > 0 && g.Height > 0, "grid: size %dx%d must be positive", g.Width, g.Height)
	check(g.Rocks >= 0, "grid.rocks: %d must not be negative", g.Rocks)
	check(g.Snails >= 0, "grid.snails: %d must not be negative", g.Snails)
	// Home, player's cell and one cell per friend fish must fit besides rocks and snails
	check(g.Width*g.Height >= 1+g.Rocks+g.Snails+constants.FishColorCount-1,
		"grid: %dx%d cannot hold %d rocks, %d snails and %d fish",
		g.Width, g.Height, g.Rocks, g.Snails, constants.FishColorCount-1)

	check(r.FirstHeartTick > 0, "rules.first_heart_tick: %d must be positive", r.FirstHeartTick)
	check(r.HeartIntervalMin > 0 && r.HeartIntervalMin <= r.HeartIntervalMax,
		"rules.heart_interval: [%d, %d] must be a positive range", r.HeartIntervalMin, r.HeartIntervalMax)
	check(r.HeartBatchMin >= 0 && r.HeartBatchMin <= r.HeartBatchMax,
		"rules.heart_batch: [%d, %d] must be a non-negative range", r.HeartBatchMin, r.HeartBatchMax)
	check(r.FatigueThreshold >= 0, "rules.fatigue_threshold: %d must not be negative", r.FatigueThreshold)
	check(r.SnailCrawlInterval > 0, "rules.snail_crawl_interval: %d must be positive", r.SnailCrawlInterval)
	check(r.IdleTickMs >= 0, "rules.idle_tick_ms: %d must not be negative", r.IdleTickMs)
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"scared_chance", r.ScaredChance},
		{"scared_move_chance", r.ScaredMoveChance},
		{"calm_move_chance", r.CalmMoveChance},
		{"falling_rock_chance", r.FallingRockChance},
	} {
		check(p.value >= 0 && p.value <= 1, "rules.%s: %v must be within [0, 1]", p.name, p.value)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		check(false, "log.level: unknown level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		check(false, "log.format: unknown format %q", c.Log.Format)
	}

	check(c.Tracing.SampleRatio >= 0 && c.Tracing.SampleRatio <= 1,
		"tracing.sample_ratio: %v must be within [0, 1]", c.Tracing.SampleRatio)
	check(!c.Tracing.Enabled || c.Tracing.File != "", "tracing.file: required when tracing is enabled")

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
}
