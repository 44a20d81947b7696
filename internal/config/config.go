package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lugondev/go-ammix/internal/common"
	"github.com/lugondev/go-ammix/pkg/decoder"
)

// EnvPrefix prefixes every environment override, e.g. AMMIX_LOG_LEVEL.
const EnvPrefix = "AMMIX"

// Config holds all configuration for the application
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
	Decode   DecodeConfig   `mapstructure:"decode"`
	Programs ProgramsConfig `mapstructure:"programs"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text

	// File sends logs to a size-rotated file instead of stderr.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // json or yaml
	Pretty bool   `mapstructure:"pretty"`
}

type DecodeConfig struct {
	// Strict rejects instruction data with bytes past the payload.
	Strict bool `mapstructure:"strict"`
	// Workers is the parallelism for batch event decoding.
	Workers int `mapstructure:"workers"`
}

// ProgramsConfig overrides the program id a binding is registered under.
// Empty values keep the canonical mainnet id.
type ProgramsConfig struct {
	Damm   string `mapstructure:"damm"`
	Clmm   string `mapstructure:"clmm"`
	Cpswap string `mapstructure:"cpswap"`
}

func (p ProgramsConfig) byName() map[string]string {
	return map[string]string{
		"damm":   p.Damm,
		"clmm":   p.Clmm,
		"cpswap": p.Cpswap,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Output: OutputConfig{
			Format: "json",
			Pretty: true,
		},
		Decode: DecodeConfig{
			Workers: 4,
		},
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", cfg.Log.MaxBackups)
	v.SetDefault("log.max_age_days", cfg.Log.MaxAgeDays)
	v.SetDefault("log.compress", cfg.Log.Compress)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.pretty", cfg.Output.Pretty)
	v.SetDefault("decode.strict", cfg.Decode.Strict)
	v.SetDefault("decode.workers", cfg.Decode.Workers)
	v.SetDefault("programs.damm", "")
	v.SetDefault("programs.clmm", "")
	v.SetDefault("programs.cpswap", "")
}

// New returns a viper instance with defaults, env binding and the config
// search path set up. An empty configPath searches for .ammix.yaml in the
// working directory and then $HOME.
func New(configPath string) *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".ammix")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	return LoadViper(New(configPath))
}

// LoadViper reads the config file of v, if any, and unmarshals the merged
// settings. Flags bound to v take precedence.
func LoadViper(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and program id overrides.
func (c *Config) Validate() error {
	if _, err := common.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	switch strings.ToLower(c.Output.Format) {
	case "json", "yaml":
	default:
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log: rotation limits must not be negative")
	}
	if c.Decode.Workers < 0 {
		return fmt.Errorf("decode.workers: must not be negative, got %d", c.Decode.Workers)
	}
	for name, id := range c.Programs.byName() {
		if id == "" {
			continue
		}
		if _, err := solana.PublicKeyFromBase58(id); err != nil {
			return fmt.Errorf("programs.%s: %w", name, err)
		}
	}
	return nil
}

// Logger builds the slog logger described by the log section.
// When log.file is set, w is ignored and records go to that file, rotated
// once it grows past log.max_size_mb.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	if c.Log.File != "" {
		w = c.Log.writer()
	}
	return common.NewLogger(w, c.Log.Level, c.Log.Format)
}

func (l LogConfig) writer() *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   l.File,
		MaxSize:    l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAgeDays,
		Compress:   l.Compress,
	}
}

// Registry returns a decoder registry with every builtin binding registered
// under its configured program id.
func (c *Config) Registry() (*decoder.Registry, error) {
	overrides := c.Programs.byName()

	reg := decoder.NewRegistry()
	reg.SetStrict(c.Decode.Strict)
	for _, p := range decoder.Builtin() {
		id := p.ProgramID()
		if s := overrides[p.Name()]; s != "" {
			var err error
			if id, err = solana.PublicKeyFromBase58(s); err != nil {
				return nil, fmt.Errorf("programs.%s: %w", p.Name(), err)
			}
		}
		reg.RegisterForProgram(id, p)
	}
	return reg, nil
}
