package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/expressgen-labs/expressgen/internal/branding"
	"github.com/expressgen-labs/expressgen/internal/config"
	"github.com/expressgen-labs/expressgen/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logLevel  string
	logFormat string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json (default from config)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds Node/Express backend projects: routers, controllers,
Mongoose models, Handlebars views, and an optional React client.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		flags := cmd.Root().PersistentFlags()
		if err := viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")); err != nil {
			return err
		}
		return viper.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	},
}

// Execute runs the root command with build info injected via ldflags.
// SIGINT and SIGTERM cancel the command context, which stops any running
// npm process.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// settings resolves configuration and builds the logger for a command run.
func settings() (*config.Settings, *zap.Logger, error) {
	s, err := config.Resolve()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(s.LogLevel, s.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring logging: %w", err)
	}
	return s, logger, nil
}
