package cli

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every setting when read from the environment,
// e.g. ERRSTR_LIBRARY or ERRSTR_OUTPUT.
const envPrefix = "ERRSTR"

// Config holds the errstr settings after flags and environment are merged.
type Config struct {
	// Library is the libcrypto passed to dlopen. Empty means search the
	// well-known library names.
	Library string

	// OutputFormat is text or json.
	OutputFormat string

	// Decimal parses codes as base 10 instead of hexadecimal.
	Decimal bool

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		OutputFormat: string(OutputFormatText),
	}
}

// newViper returns a viper instance reading ERRSTR_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	def := NewConfig()
	v.SetDefault("library", def.Library)
	v.SetDefault("output", def.OutputFormat)
	v.SetDefault("decimal", def.Decimal)
	v.SetDefault("verbose", def.Verbose)
	return v
}

// bindFlags makes flags take precedence over the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	return v.BindPFlags(flags)
}

// loadConfig reads the merged settings out of v.
func loadConfig(v *viper.Viper) *Config {
	return &Config{
		Library:      v.GetString("library"),
		OutputFormat: v.GetString("output"),
		Decimal:      v.GetBool("decimal"),
		Verbose:      v.GetBool("verbose"),
	}
}
