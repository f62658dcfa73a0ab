package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/cragsync/pkg/constants"
	"github.com/agentstation/cragsync/pkg/crags"
	"github.com/agentstation/cragsync/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string

	// Config file
	ConfigFile string

	// Inputs
	CSVPath     string
	LogbookPath string

	// Resolver tables, merged with the built-in defaults
	Stoplist  []string
	Overrides crags.Overrides

	// Logging configuration. EnvLogLevel comes from LOG_LEVEL or the
	// log-level config key and ranks below the command-line shortcuts.
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// override is one entry of the overrides config list:
//
//	overrides:
//	  - name: Geyikbayırı
//	    depth: 1
//
// A list is used instead of a map because viper lowercases map keys.
type override struct {
	Name  string `mapstructure:"name"`
	Depth int    `mapstructure:"depth"`
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (CRAGSYNC_ prefix)
// 3. .env files
// 4. Config file (configFile, or ~/.cragsync.yaml, or ./.cragsync.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("format", "text")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot read "+constants.ConfigFileName+".yaml", err)
			}
		}
	}

	var entries []override
	if err := v.UnmarshalKey("overrides", &entries); err != nil {
		return nil, errors.NewConfigError("overrides", "expected a list of {name, depth}", err)
	}
	overrides := make(crags.Overrides, len(entries))
	for _, e := range entries {
		overrides[e.Name] = e.Depth
	}

	return &Config{
		NoColor:     v.GetBool("no-color"),
		Format:      v.GetString("format"),
		ConfigFile:  v.ConfigFileUsed(),
		CSVPath:     v.GetString("csv"),
		LogbookPath: v.GetString("logbook"),
		Stoplist:    v.GetStringSlice("stoplist"),
		Overrides:   overrides,
		EnvLogLevel: firstNonEmpty(v.GetString("log-level"), os.Getenv("LOG_LEVEL")),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// UpdateFromFlags copies explicitly set flag values onto the config so that
// flags take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(flags *pflag.FlagSet) {
	if f := flags.Lookup("verbose"); f != nil {
		c.Verbose = f.Value.String() == "true"
	}
	if f := flags.Lookup("quiet"); f != nil {
		c.Quiet = f.Value.String() == "true"
	}
	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		c.LogLevel = f.Value.String()
	}
	if f := flags.Lookup("no-color"); f != nil && f.Changed {
		c.NoColor = f.Value.String() == "true"
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		c.Format = f.Value.String()
	}
	if f := flags.Lookup("csv"); f != nil && f.Changed {
		c.CSVPath = f.Value.String()
	}
	if f := flags.Lookup("logbook"); f != nil && f.Changed {
		c.LogbookPath = f.Value.String()
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first because godotenv never overrides a variable
// that is already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
