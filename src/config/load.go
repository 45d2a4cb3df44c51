package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the run parameters. Later layers override earlier ones:
// defaults, YAML file, .env file, process environment, flags.
type Config struct {
	Floors     int    `yaml:"floors"`
	Capacity   int    `yaml:"capacity"`
	StartFloor int    `yaml:"start_floor"`
	Manifest   string `yaml:"manifest"`
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		Floors:     NumFloors,
		Capacity:   Capacity,
		StartFloor: StartFloor,
		LogLevel:   LogLevel,
	}
}

// LoadFile overlays the YAML file at path onto c. Keys missing from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// LoadEnv overlays SWEEPSIM_* keys from the .env file at path, then from the process
// environment. A missing .env file is not an error when optional is set.
func (c *Config) LoadEnv(path string, optional bool) error {
	values := map[string]string{}
	if path != "" {
		fileValues, err := godotenv.Read(path)
		switch {
		case err == nil:
			values = fileValues
		case optional && errors.Is(err, os.ErrNotExist):
			slog.Debug("No env file", "path", path)
		default:
			return fmt.Errorf("read env file %s: %w", path, err)
		}
	}
	for _, key := range []string{"FLOORS", "CAPACITY", "START_FLOOR", "MANIFEST", "LOG_LEVEL", "LOG_FILE"} {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			values[EnvPrefix+key] = v
		}
	}
	return c.apply(values)
}

func (c *Config) apply(values map[string]string) error {
	ints := map[string]*int{
		EnvPrefix + "FLOORS":      &c.Floors,
		EnvPrefix + "CAPACITY":    &c.Capacity,
		EnvPrefix + "START_FLOOR": &c.StartFloor,
	}
	for key, dst := range ints {
		raw, ok := values[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, raw)
		}
		*dst = n
	}

	strs := map[string]*string{
		EnvPrefix + "MANIFEST":  &c.Manifest,
		EnvPrefix + "LOG_LEVEL": &c.LogLevel,
		EnvPrefix + "LOG_FILE":  &c.LogFile,
	}
	for key, dst := range strs {
		if raw, ok := values[key]; ok {
			*dst = raw
		}
	}
	return nil
}

func (c Config) Validate() error {
	if c.Floors < 1 {
		return fmt.Errorf("%w: floors must be at least 1, got %d", ErrInvalidConfig, c.Floors)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.StartFloor < 0 || c.StartFloor >= c.Floors {
		return fmt.Errorf("%w: start floor %d outside 0-%d", ErrInvalidConfig, c.StartFloor, c.Floors-1)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel as one of debug, info, warn or error.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
