// Package cli implements the aggql command.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zoobzio/aggql/internal/config"
	"github.com/zoobzio/aggql/internal/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	fs     afero.Fs
	viper  *viper.Viper
	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd builds the aggql command tree reading files from fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{
		fs:     fs,
		viper:  viper.New(),
		cfg:    &config.Config{Dialect: config.DefaultDialect, LogLevel: config.DefaultLogLevel},
		logger: zerolog.Nop(),
	}

	var configFile string
	rootCmd := &cobra.Command{
		Use:   "aggql",
		Short: "Compile aggregation queries into SQL",
		Long: `aggql turns a declarative query (labels, aggregations, filters) and a
schema of join relationships into a single SQL statement.

Query and schema documents may be written in JSON or YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.fs, a.viper, configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.NewWithComponent(logging.Config{
				Level:  cfg.LogLevel,
				Pretty: cfg.LogPretty,
				Output: cmd.ErrOrStderr(),
			}, cmd.Name())
			if cfg.File != "" {
				a.logger.Debug().Str("file", cfg.File).Msg("loaded config")
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default .aggql.yaml)")
	flags.String("dialect", config.DefaultDialect, "SQL dialect (duckdb, postgres, sqlite, mariadb, mssql)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.Bool("log-pretty", false, "human-readable log output")
	_ = a.viper.BindPFlag(config.KeyDialect, flags.Lookup("dialect"))
	_ = a.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.viper.BindPFlag(config.KeyLogPretty, flags.Lookup("log-pretty"))

	rootCmd.AddCommand(newCompileCmd(a))
	rootCmd.AddCommand(newQualifyCmd(a))
	rootCmd.AddCommand(newKeywordsCmd(a))
	rootCmd.AddCommand(newDialectsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command against the OS filesystem.
func Execute() error {
	return NewRootCmd(afero.NewOsFs()).Execute()
}
