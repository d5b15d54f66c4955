package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seawatch/happywhale"
	"github.com/seawatch/happywhale/internal/config"
	logpkg "github.com/seawatch/happywhale/internal/logger"
	"github.com/seawatch/happywhale/internal/version"
)

// app carries state shared by all subcommands once setup has run.
type app struct {
	configPath string
	dbPath     string
	endpoint   string
	logLevel   string
	jsonOutput bool

	cfg    config.Config
	log    *zap.Logger
	client *happywhale.Client
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "happywhale",
		Short:         "Search Happywhale encounters and individuals",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default config/<ENV>.yaml)")
	flags.StringVar(&a.dbPath, "db", "", "lookup database path (overrides config)")
	flags.StringVar(&a.endpoint, "endpoint", "", "critterspot search URL (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&a.jsonOutput, "json", false, "print listings as JSON")

	versionCmd := versionCommand()

	rootCmd.AddCommand(
		oceansCommand(a),
		seasCommand(a),
		speciesCommand(a),
		encountersCommand(a),
		individualsCommand(a),
		healthCommand(a),
		versionCmd,
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// version needs neither config nor database
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		return a.setup(cmd)
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		if a.log != nil {
			_ = a.log.Sync()
		}
	}

	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the client.
func (a *app) setup(cmd *cobra.Command) error {
	env := config.GetEnv()

	var err error
	if a.configPath != "" {
		a.cfg, err = config.ReadFile(a.configPath)
	} else {
		a.cfg, err = config.Read(env)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if a.dbPath != "" {
		a.cfg.Database.Path = a.dbPath
	}
	if a.endpoint != "" {
		a.cfg.Remote.Endpoint = a.endpoint
	}
	if a.logLevel != "" {
		a.cfg.Logging.Level = a.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.log, err = logpkg.NewLogger(env, a.cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.log.Debug("starting",
		zap.String("version", version.Version),
		zap.String("env", env),
		zap.String("database", a.cfg.Database.Path),
		zap.String("endpoint", a.cfg.Remote.Endpoint),
	)

	ctx := logpkg.ContextWithLogger(cmd.Context(), a.log)
	cmd.SetContext(ctx)

	a.client, err = happywhale.New(ctx,
		happywhale.WithDatabase(a.cfg.Database.Path),
		happywhale.WithSlowQueryThreshold(a.cfg.Database.SlowThreshold()),
		happywhale.WithEndpoint(a.cfg.Remote.Endpoint),
		happywhale.WithHTTPClient(&http.Client{Timeout: a.cfg.Remote.Timeout()}),
		happywhale.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
