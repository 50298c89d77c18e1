package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	openssl "github.com/golang-fips/cryptonative"
)

// Execute runs the errstr command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the errstr command tree.
func NewRootCommand() *cobra.Command {
	v := newViper()
	rootCmd := &cobra.Command{
		Use:   "errstr [flags] <code>...",
		Short: "Decode OpenSSL error codes",
		Long: `errstr decodes packed OpenSSL error codes, such as the values
returned by ERR_get_error, using the libcrypto found on this system.

Codes are hexadecimal, with or without a 0x prefix, unless --decimal
is set. Settings may also come from ERRSTR_LIBRARY, ERRSTR_OUTPUT,
ERRSTR_DECIMAL and ERRSTR_VERBOSE.`,
		// Positional arguments are codes, not subcommand names.
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runDecode(cmd, loadConfig(v), args)
		},
	}

	pflags := rootCmd.PersistentFlags()
	pflags.String("library", "", "libcrypto shared library to load (default: search well-known names)")
	pflags.StringP("output", "o", string(OutputFormatText), "output format (text, json)")
	pflags.BoolP("verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolP("decimal", "d", false, "parse codes as decimal")

	for _, flags := range []*pflag.FlagSet{pflags, rootCmd.Flags()} {
		if err := bindFlags(v, flags); err != nil {
			panic(fmt.Errorf("bind flags: %w", err))
		}
	}

	rootCmd.AddCommand(newVersionCmd(v))
	return rootCmd
}

func runDecode(cmd *cobra.Command, cfg *Config, args []string) error {
	printer, err := NewPrinter(cfg.OutputFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	codes := make([]openssl.ErrorCode, 0, len(args))
	for _, arg := range args {
		e, err := parseCode(arg, cfg.Decimal)
		if err != nil {
			return err
		}
		codes = append(codes, e)
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if err := loadOpenSSL(cfg, log); err != nil {
		return err
	}
	infos := make([]CodeInfo, 0, len(codes))
	for _, e := range codes {
		info := describe(e)
		log.Debug("decoded error code",
			zap.Uint64("code", info.Code),
			zap.Uint("lib", info.Lib),
			zap.Uint("reason", info.Reason),
			zap.Bool("alloc_failure", info.AllocFailure))
		infos = append(infos, info)
	}
	return printer.PrintCodes(infos)
}

// loadOpenSSL initializes libcrypto from cfg.Library.
func loadOpenSSL(cfg *Config, log *zap.Logger) error {
	log.Debug("loading libcrypto", zap.String("library", cfg.Library))
	if err := openssl.Init(cfg.Library); err != nil {
		return fmt.Errorf("load libcrypto: %w", err)
	}
	log.Debug("libcrypto loaded",
		zap.String("version", openssl.VersionText()),
		zap.Uint("major", openssl.MajorVersion()),
		zap.Uint("minor", openssl.MinorVersion()),
		zap.Uint("patch", openssl.PatchVersion()))
	return nil
}
