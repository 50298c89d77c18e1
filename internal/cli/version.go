package cli

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	openssl "github.com/golang-fips/cryptonative"
)

// Version information (injected at build time via -ldflags)
var (
	Version   = "dev"     // Set via -ldflags "-X github.com/golang-fips/cryptonative/internal/cli.Version=x.y.z"
	GitCommit = "unknown" // Set via -ldflags "-X github.com/golang-fips/cryptonative/internal/cli.GitCommit=abc123"
	BuildDate = "unknown" // Set via -ldflags "-X github.com/golang-fips/cryptonative/internal/cli.BuildDate=2026-01-15"
)

func newVersionCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the errstr build information and the version of the libcrypto it loads.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(v)
			printer, err := NewPrinter(cfg.OutputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			info := VersionInfo{
				Version:   Version,
				GitCommit: GitCommit,
				BuildDate: BuildDate,
				GoVersion: runtime.Version(),
			}
			// A missing libcrypto is not fatal for version output.
			if err := loadOpenSSL(cfg, log); err != nil {
				log.Debug("libcrypto unavailable", zap.Error(err))
			} else {
				info.OpenSSL = openssl.VersionText()
			}
			return printer.PrintVersion(info)
		},
	}
}
