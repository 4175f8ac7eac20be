package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/bonsai-core/cliout"
	"github.com/jongio/bonsai-core/config"
	"github.com/jongio/bonsai-core/env"
	"github.com/jongio/bonsai-core/logutil"
	"github.com/jongio/bonsai-core/version"
)

type globalOptions struct {
	configPath string
	envFile    string
	output     string
	debug      bool

	cfg *config.Config
}

func (g *globalOptions) bind(fs *pflag.FlagSet) {
	fs.StringVar(&g.configPath, "config", "", "Path to bonsai.yaml (default ./"+config.DefaultFileName+")")
	fs.StringVar(&g.envFile, "env-file", "", "Load variables from a .env file; the environment wins on conflicts")
	fs.StringVarP(&g.output, "output", "o", "default", "Output format (default, json)")
	fs.BoolVar(&g.debug, "debug", false, "Enable debug logging")
}

// prepare applies the global flags. It runs before every subcommand.
func (g *globalOptions) prepare() error {
	if err := cliout.SetFormat(g.output); err != nil {
		return err
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	logutil.SetupLogger(g.debug, cfg.Structured())
	if !g.debug {
		logutil.SetLevel(logutil.ParseLevel(cfg.Log.Level))
	}
	logutil.Debug("loaded config", "path", g.configPath, "primary", cfg.PrimaryVar, "fallback", cfg.FallbackVar)
	return nil
}

// environment snapshots the process environment and fills gaps from --env-file.
func (g *globalOptions) environment() (env.Map, error) {
	vars := env.Map(env.OS().Environ())
	if g.envFile == "" {
		return vars, nil
	}
	if err := env.LoadFileInto(g.envFile, vars, vars); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return vars, nil
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	info := version.New("bonsai")
	info.Version = Version
	info.BuildDate = BuildDate
	info.GitCommit = GitCommit

	root := &cobra.Command{
		Use:   "bonsai",
		Short: "Resolve the search cluster URL from the environment",
		Long: `bonsai picks the search cluster URL the application will connect to.

BONSAI_URL is preferred when it is a valid http or https URL; its port is
corrected to the scheme's standard port. Otherwise ELASTICSEARCH_URL is used
exactly as given. Credentials are never printed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.prepare()
		},
	}
	g.bind(root.PersistentFlags())

	root.AddCommand(
		newResolveCmd(g),
		newEnvCmd(g),
		version.NewCommand(info),
	)
	return root
}
