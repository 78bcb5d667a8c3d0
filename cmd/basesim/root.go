package main

import (
	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand once the root has loaded the
// configuration.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger

	newLogger func(config.LoggerConfig) *zap.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{newLogger: logging.New}

	root := &cobra.Command{
		Use:           "basesim",
		Short:         "Headless balloons and static electricity simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = a.newLogger(cfg.Logger)
			logging.LogConfig(a.log, cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, toml or json)")

	root.AddCommand(
		newRunCmd(a),
		newClassifyCmd(a),
		newDefaultsCmd(a),
	)
	return root, a
}
