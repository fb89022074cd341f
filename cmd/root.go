package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rail44/primer/internal/config"
	"github.com/rail44/primer/internal/log"
)

type configKey struct{}

// programs maps each standalone executable to its command constructor
var programs = map[string]func() *cobra.Command{
	"ftoc":       newFtoCCmd,
	"fibonacci":  newFibonacciCmd,
	"rectangles": newRectanglesCmd,
	"twelvedays": newTwelveDaysCmd,
}

// NewRootCommand returns the primer command with every program as a subcommand
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "primer",
		Short: "Small exercises: temperatures, Fibonacci numbers, rectangles and a Christmas song",
		Long: `Primer bundles four independent programs. Each one is also built as its
own executable under cmd/.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	withGlobalFlags(rootCmd)

	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rootCmd.AddCommand(programs[name]())
	}
	return rootCmd
}

// NewProgramCommand returns a single program as a top-level command
func NewProgramCommand(name string) (*cobra.Command, error) {
	build, ok := programs[name]
	if !ok {
		return nil, fmt.Errorf("unknown program: %s", name)
	}
	return withGlobalFlags(build()), nil
}

// Execute runs the primer command
func Execute() {
	execute(NewRootCommand())
}

// ExecuteProgram runs one program as a standalone executable
func ExecuteProgram(name string) {
	c, err := NewProgramCommand(name)
	if err != nil {
		log.Error("failed to start", slog.String("error", err.Error()))
		os.Exit(1)
	}
	execute(c)
}

func execute(c *cobra.Command) {
	if err := c.Execute(); err != nil {
		log.Error(c.Name()+" failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func withGlobalFlags(c *cobra.Command) *cobra.Command {
	c.PersistentFlags().String("config", "", "config file (default is primer.toml in the working directory or a parent)")
	c.PersistentFlags().String("log-level", "", "log level: error, warn, info or debug (default from config, else info)")
	c.PersistentPreRunE = initConfig
	c.SilenceUsage = true
	c.SilenceErrors = true
	return c
}

// initConfig resolves configuration with flags over PRIMER_* environment
// variables over primer.toml, then applies the log level.
func initConfig(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetEnvPrefix("primer")
	v.AutomaticEnv()
	if err := v.BindPFlag("config", cmd.Flags().Lookup("config")); err != nil {
		return err
	}
	if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}

	var (
		cfg *config.Config
		err error
	)
	if cfgFile := v.GetString("config"); cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	if level := v.GetString("log_level"); level != "" {
		cfg.LogLevel = level
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}
	if cfg.Path != "" {
		log.Debug("using config file", slog.String("path", cfg.Path))
	}

	cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
	return nil
}

func setupLogging(cfg *config.Config) error {
	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	return log.SetLevel(level)
}

// configFrom returns the configuration stored by initConfig
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
