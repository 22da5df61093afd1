package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/itsmealinn/transaction-simulator/internal/app"
	"github.com/itsmealinn/transaction-simulator/internal/config"
	"github.com/itsmealinn/transaction-simulator/internal/constants"
	"github.com/itsmealinn/transaction-simulator/internal/csvio"
	"github.com/itsmealinn/transaction-simulator/internal/errhandler"
	"github.com/itsmealinn/transaction-simulator/internal/store"
	"github.com/itsmealinn/transaction-simulator/internal/ui/views"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Execute runs one replay. Every fatal error lands here and terminates the
// process with a non-zero code; the balance table goes to stdout only on a
// fully successful run.
func Execute(migrations fs.FS) {
	// stdout carries only the balance table; diagnostics go to stderr.
	pterm.Error.Writer = os.Stderr
	pterm.Info.Writer = os.Stderr
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd := newRootCmd(migrations)
	if err := rootCmd.Execute(); err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func newRootCmd(migrations fs.FS) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName + " <input-file>",
		Short: "txsim replays a transaction stream into per-client account balances",
		Long: `txsim reads an ordered CSV stream of deposits, withdrawals, disputes,
resolves and chargebacks, applies it to per-client accounts and prints the
resulting balance table.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], migrations)
		},
	}

	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.Flags().StringP("format", "f", constants.FormatCSV, "output format: csv or table")
	rootCmd.Flags().String("audit", "", "record per-operation outcomes into this sqlite database")

	_ = viper.BindPFlag("output.format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("audit.path", rootCmd.Flags().Lookup("audit"))

	return rootCmd
}

func run(inputPath string, migrations fs.FS) error {
	if err := initConfig(); err != nil {
		return err
	}

	switch cfg.Output.Format {
	case constants.FormatCSV, constants.FormatTable:
	default:
		return fmt.Errorf("unknown output format '%s' (must be csv or table)", cfg.Output.Format)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		return err
	}
	defer cleanup()

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	statuses, err := application.Replay.Replay(file)
	if err != nil {
		return err
	}

	if cfg.Output.Format == constants.FormatTable {
		if err := views.NewStatusTableView().Render(statuses); err != nil {
			return err
		}
	} else if err := csvio.WriteStatuses(os.Stdout, statuses); err != nil {
		return err
	}

	if application.Audit != nil {
		counts, err := application.Audit.CountByOutcome()
		if err != nil {
			return err
		}
		applied := counts[store.OutcomeApplied]
		skipped := counts[store.OutcomeSkipped]
		pterm.Info.Printf("Audited %d operations: %d applied, %d skipped\n",
			applied+skipped, applied, skipped)
	}

	return nil
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}
