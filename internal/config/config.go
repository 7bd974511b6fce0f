// Package config resolves runtime settings from defaults, an optional .env
// file, BUBBLEPOP_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"bubblepop/internal/sim"
)

const EnvPrefix = "BUBBLEPOP_"

const (
	UIEbiten   = "ebiten"
	UITerminal = "terminal"

	PointerPress = "press"
	PointerHover = "hover"
)

type Config struct {
	Difficulty int
	Seed       int64
	Debug      bool
	UI         string
	Scale      float64
	Volume     float64
	Pointer    string
	AssetDir   string
	EnvFile    string
	PopCues    string
}

func Default() Config {
	return Config{
		Difficulty: 1,
		UI:         UIEbiten,
		Scale:      1,
		Volume:     0.5,
		Pointer:    PointerPress,
		EnvFile:    ".env",
		PopCues:    "pop2,pop2",
	}
}

// Load builds the configuration for args (without the program name).
func Load(args []string) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("bubblepop", flag.ContinueOnError)
	var flags Config
	fset.StringVar(&flags.EnvFile, "env", cfg.EnvFile, "path of an optional .env file")
	fset.IntVar(&flags.Difficulty, "difficulty", cfg.Difficulty, "difficulty multiplier (levels, points per level, enemies)")
	fset.Int64Var(&flags.Seed, "seed", cfg.Seed, "random seed, 0 picks one from the clock")
	fset.BoolVar(&flags.Debug, "debug", cfg.Debug, "draw hitboxes and the pointer line")
	fset.StringVar(&flags.UI, "ui", cfg.UI, "host to run: ebiten or terminal")
	fset.Float64Var(&flags.Scale, "scale", cfg.Scale, "window scale factor (ebiten)")
	fset.Float64Var(&flags.Volume, "volume", cfg.Volume, "sound volume between 0 and 1")
	fset.StringVar(&flags.Pointer, "pointer", cfg.Pointer, "pointer tracking: press or hover")
	fset.StringVar(&flags.AssetDir, "assets", cfg.AssetDir, "directory overriding the bundled images/ and sounds/")
	fset.StringVar(&flags.PopCues, "pop-cues", cfg.PopCues, "cues for the two pop branches, e.g. pop1,pop2")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	dotenv, err := readEnvFile(flags.EnvFile, set["env"])
	if err != nil {
		return Config{}, err
	}
	cfg.EnvFile = flags.EnvFile

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[EnvPrefix+key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	if set["difficulty"] {
		cfg.Difficulty = flags.Difficulty
	}
	if set["seed"] {
		cfg.Seed = flags.Seed
	}
	if set["debug"] {
		cfg.Debug = flags.Debug
	}
	if set["ui"] {
		cfg.UI = flags.UI
	}
	if set["scale"] {
		cfg.Scale = flags.Scale
	}
	if set["volume"] {
		cfg.Volume = flags.Volume
	}
	if set["pointer"] {
		cfg.Pointer = flags.Pointer
	}
	if set["assets"] {
		cfg.AssetDir = flags.AssetDir
	}
	if set["pop-cues"] {
		cfg.PopCues = flags.PopCues
	}

	return cfg, cfg.Validate()
}

// readEnvFile parses a .env file. A missing file is only an error when the
// path was asked for explicitly.
func readEnvFile(path string, explicit bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("env file %s: %w", path, err)
	}
	return env, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var err error
	if v, ok := lookup("DIFFICULTY"); ok {
		if c.Difficulty, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("%sDIFFICULTY: %w", EnvPrefix, err)
		}
	}
	if v, ok := lookup("SEED"); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
	}
	if v, ok := lookup("DEBUG"); ok {
		if c.Debug, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%sDEBUG: %w", EnvPrefix, err)
		}
	}
	if v, ok := lookup("SCALE"); ok {
		if c.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%sSCALE: %w", EnvPrefix, err)
		}
	}
	if v, ok := lookup("VOLUME"); ok {
		if c.Volume, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%sVOLUME: %w", EnvPrefix, err)
		}
	}
	if v, ok := lookup("UI"); ok {
		c.UI = v
	}
	if v, ok := lookup("POINTER"); ok {
		c.Pointer = v
	}
	if v, ok := lookup("ASSETS"); ok {
		c.AssetDir = v
	}
	if v, ok := lookup("POP_CUES"); ok {
		c.PopCues = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Difficulty < 1 {
		return fmt.Errorf("difficulty must be at least 1, got %d", c.Difficulty)
	}
	if c.UI != UIEbiten && c.UI != UITerminal {
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UIEbiten, UITerminal)
	}
	if c.Pointer != PointerPress && c.Pointer != PointerHover {
		return fmt.Errorf("unknown pointer mode %q (want %s or %s)", c.Pointer, PointerPress, PointerHover)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be within [0, 1], got %v", c.Volume)
	}
	if _, err := c.Cues(); err != nil {
		return err
	}
	return nil
}

// Cues parses PopCues into the per-branch cue pair.
func (c Config) Cues() ([2]sim.Cue, error) {
	var out [2]sim.Cue
	parts := strings.Split(c.PopCues, ",")
	if len(parts) != 2 {
		return out, fmt.Errorf("pop cues %q: want two comma-separated names", c.PopCues)
	}
	for i, p := range parts {
		cue, err := sim.ParseCue(strings.TrimSpace(p))
		if err != nil {
			return out, fmt.Errorf("pop cues: %w", err)
		}
		out[i] = cue
	}
	return out, nil
}
