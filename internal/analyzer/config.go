package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "BST"

	keyConfig          = "config"
	keyLogLevel        = "log-level"
	keyLogFormat       = "log-format"
	keyStrategy        = "strategy"
	keyRebalanceDelete = "rebalance-delete"
	keyDefaultKeys     = "default-keys"
)

var defaultKeys = []int{21, 8, 9, 3, 15, 19, 20, 7, 2, 1, 5, 6, 4, 13, 14, 12, 17, 16, 18}

type configuration struct {
	// Configuration file URL (YAML, JSON or TOML, by extension).
	CfgFile   string
	LogLevel  string
	LogFormat string
	// Construction used by "build" and by "import" in a session.
	Strategy string
	// Use the rebalancing delete in sessions.
	RebalanceDelete bool
	DefaultKeys     []int
}

func (c *configuration) addConfigurationFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&c.CfgFile, keyConfig, "", "config file URL")
	f.StringVar(&c.LogLevel, keyLogLevel, "info", "log level: trace, debug, info, warn, error")
	f.StringVar(&c.LogFormat, keyLogFormat, formatConsole, "log format: console or json")
	f.StringVar(&c.Strategy, keyStrategy, string(StrategyMedian), "construction strategy: naive, median or avl")
	f.BoolVar(&c.RebalanceDelete, keyRebalanceDelete, false, "rebalance the tree after deletions")
	f.IntSliceVar(&c.DefaultKeys, keyDefaultKeys, defaultKeys, "keys loaded by import")
}

func (c *configuration) strategy() (Strategy, error) {
	return ParseStrategy(c.Strategy)
}

// initializeConfig reads in config file and ENV variables if set.
func (c *configuration) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	if c.CfgFile != "" {
		v.SetConfigFile(c.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %q: %w", c.CfgFile, err)
		}
	}

	// When we bind flags to environment variables expect that the
	// environment variables are prefixed, e.g. a flag like --strategy
	// binds to an environment variable BST_STRATEGY.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == keyConfig {
			return
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to BST_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("binding env to flag %q: %w", f.Name, err))
				return
			}
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, flagValue(v.Get(f.Name))); err != nil {
				bindFlagErr = append(bindFlagErr, fmt.Errorf("setting flag %q value: %w", f.Name, err))
				return
			}
		}
	})

	return errors.Join(bindFlagErr...)
}

// flagValue formats a config value the way pflag parses it; lists from config
// files become comma separated.
func flagValue(val any) string {
	if l, ok := val.([]any); ok {
		s := make([]string, len(l))
		for i, e := range l {
			s[i] = fmt.Sprintf("%v", e)
		}
		return strings.Join(s, ",")
	}
	return fmt.Sprintf("%v", val)
}
