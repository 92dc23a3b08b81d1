package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/qrgrid"
	"github.com/gogpu/qrgrid/internal/config"
)

// cli carries state shared by all subcommands.
type cli struct {
	configPath string
	logLevel   string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "qrgrid",
		Short:         "Render QR codes as labeled module grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/qrgrid/config.yaml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newRenderCmd(c),
		newInspectCmd(c),
		newViewCmd(c),
		newConfigCmd(c),
	)
	return root
}

// setup loads the config and installs the library logger.
func (c *cli) setup(cmd *cobra.Command) error {
	if c.configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		c.configPath = p
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	c.cfg = cfg

	qrgrid.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// viewState returns the configured view with flag overrides applied.
func (c *cli) viewState(cmd *cobra.Command, cell int, regions bool) qrgrid.ViewState {
	s := c.cfg.ViewState()
	if cmd.Flags().Changed("cell") {
		s = s.WithCellSize(cell)
	}
	if cmd.Flags().Changed("regions") {
		s.ShowRegions = regions
	}
	return s
}

// level returns the configured EC level, or the --ec flag when given.
func (c *cli) level(cmd *cobra.Command, flag string) (qrgrid.ECLevel, error) {
	if !cmd.Flags().Changed("ec") {
		return c.cfg.ECLevel, nil
	}
	l, err := qrgrid.ParseECLevel(flag)
	if err != nil {
		return 0, fmt.Errorf("--ec: %w", err)
	}
	return l, nil
}
