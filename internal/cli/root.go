package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jankowskaweronika/mojifix/internal/logging"
	"github.com/jankowskaweronika/mojifix/internal/model"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const version = "mojifix v0.1.0"

var (
	cfgFile   string
	verbose   bool
	logFormat string

	logger *zap.Logger
)

// rootCmd repairs files when run without a subcommand
var rootCmd = &cobra.Command{
	Use:   "mojifix [path...]",
	Short: "mojifix - repair double-encoded emoji and symbols in text files",
	Long: `mojifix repairs text files whose emoji and symbols were saved as mojibake:
UTF-8 bytes read back as Windows-1252 and encoded to UTF-8 a second time,
so that a sparkles emoji shows up as "âœ¨".

Each file is read as strict UTF-8, every known corrupted sequence is replaced
with the character it stands for, and the result replaces the file atomically.
A file that cannot be read or decoded is left untouched.

The table of known sequences is fixed; run 'mojifix table' to see it.

Example:
  mojifix                     # repairs ./App.jsx
  mojifix src/App.jsx src/components/Header.jsx
  mojifix --dry-run -v src/App.jsx`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(viper.GetBool("output.verbose"), viper.GetString("output.log_format"))
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runRepair,
}

// Execute runs the root command with args, writing command output to stdout
// and stderr
func Execute(args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.mojifix/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output.log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in .env, the config file and MOJIFIX_* variables
func initConfig() {
	// Values already in the environment win over .env
	_ = godotenv.Load()

	defaults := model.DefaultConfig()
	viper.SetDefault("target.paths", defaults.Target.Paths)
	viper.SetDefault("write.dry_run", defaults.Write.DryRun)
	viper.SetDefault("write.sync", defaults.Write.Sync)
	viper.SetDefault("output.verbose", defaults.Output.Verbose)
	viper.SetDefault("output.log_format", defaults.Output.LogFormat)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".mojifix"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// MOJIFIX_WRITE_DRY_RUN maps to write.dry_run
	viper.SetEnvPrefix("MOJIFIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration. Defaults reach it through
// viper so a shorter list from env or file is not merged into the default one.
func loadConfig() (*model.Config, error) {
	cfg := &model.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
