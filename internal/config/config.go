package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/mutker/goresult/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel  = LogLevelWarning
	DefaultCacheTTL  = 5 * time.Minute
	DefaultEnvPrefix = "RESULTDEMO"

	configName = "resultdemo"
)

type Config struct {
	DBPath   string        `mapstructure:"db"`
	LogLevel LogLevel      `mapstructure:"log_level"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Debug    bool          `mapstructure:"debug"`
	Verbose  bool          `mapstructure:"verbose"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"db":        "db",
	"log-level": "log_level",
	"cache-ttl": "cache_ttl",
	"debug":     "debug",
	"verbose":   "verbose",
}

// DefaultDBPath returns the database location used when none is configured
func DefaultDBPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, configName, "users.db")
}

// RegisterFlags defines the configuration flags on fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("db", DefaultDBPath(), "Path to the users database")
	fs.String("log-level", string(DefaultLogLevel), "Log level (debug, info, warning, error)")
	fs.Duration("cache-ttl", DefaultCacheTTL, "How long looked-up users stay cached")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
}

// Load reads configuration from defaults, the config file, the environment
// and the flags in fs, in increasing order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{
		configPath: os.Getenv(DefaultEnvPrefix + "_CONFIG"),
		envPrefix:  DefaultEnvPrefix,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	v.SetDefault("db", DefaultDBPath())
	v.SetDefault("log_level", string(DefaultLogLevel))
	v.SetDefault("cache_ttl", DefaultCacheTTL)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Load configuration from file
	if o.configPath != "" {
		v.SetConfigFile(o.configPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
		v.AddConfigPath("/etc")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Override config file values with command line flags
	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errFactory.Wrap(errors.ErrBindFlags, err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	// Apply debug and verbose flags
	if config.Debug {
		config.LogLevel = LogLevelDebug
	} else if config.Verbose && config.LogLevel == DefaultLogLevel {
		config.LogLevel = LogLevelInfo
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !c.LogLevel.IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	if c.DBPath == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "database path must not be empty")
	}
	if c.CacheTTL < 0 {
		return errFactory.WithData(errors.ErrInvalidConfig, c.CacheTTL)
	}

	return nil
}

func (c *Config) GetDBPath() string          { return c.DBPath }
func (c *Config) GetLogLevel() LogLevel      { return c.LogLevel }
func (c *Config) GetCacheTTL() time.Duration { return c.CacheTTL }
func (c *Config) IsDebug() bool              { return c.Debug }

var _ Provider = (*Config)(nil)
