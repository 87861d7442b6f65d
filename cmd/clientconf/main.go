package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/clientconf"
)

// version is set at build time via ldflags.
var version = "dev"

type rootConfig struct {
	configFile string
	prefix     string
	clients    []string
	logLevel   string
}

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &rootConfig{}
	cmd := &cobra.Command{
		Use:     "clientconf",
		Short:   "Resolve layered client configuration keys",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cfg.logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.configFile, "config", "", "Property file path (TOML, JSON or YAML)")
	cmd.PersistentFlags().StringVar(&cfg.prefix, "prefix", clientconf.DefaultPrefix, "Canonical key prefix")
	cmd.PersistentFlags().StringArrayVar(&cfg.clients, "client", nil,
		"Registered client as FULL_NAME or FULL_NAME=CONFIG_KEY (repeatable)")
	cmd.PersistentFlags().StringVar(&cfg.logLevel, "log-level", "info", "Log level")

	cmd.AddCommand(newResolveCommand(cfg))
	cmd.AddCommand(newKeysCommand(cfg))
	return cmd
}

func newResolveCommand(cfg *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME",
		Short: "Resolve one configuration name through the fallback chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := buildResolver(cfg)
			if err != nil {
				return err
			}
			v, ok := resolver.Resolve(args[0])
			if !ok {
				log.Warn().Str("name", args[0]).Msg("no value found")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s (source %s, ordinal %d)\n",
				v.Name, v.Value, v.Source, v.Ordinal)
			return nil
		},
	}
}

func newKeysCommand(cfg *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List all property names in canonical form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := buildResolver(cfg)
			if err != nil {
				return err
			}
			for _, key := range resolver.CanonicalKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}

func buildResolver(cfg *rootConfig) (*clientconf.Resolver, error) {
	builder := clientconf.NewBuilder().
		WithPrefix(cfg.prefix).
		WithLogger(log.Logger)

	for _, spec := range cfg.clients {
		fullName, configKey, _ := strings.Cut(spec, "=")
		if fullName == "" {
			return nil, fmt.Errorf("invalid --client value %q", spec)
		}
		builder.WithClient(fullName, configKey)
	}
	if cfg.configFile != "" {
		builder.WithFile(cfg.configFile)
	}

	resolver, err := builder.Build()
	if err != nil {
		if errors.Is(err, clientconf.ErrConfigNotFound) {
			log.Warn().Str("file", cfg.configFile).Msg("config file not found, continuing without it")
			return resolver, nil
		}
		return nil, err
	}
	return resolver, nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
