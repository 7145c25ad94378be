package main

import (
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2"
	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/logging"
)

// app is the state prepared for subcommands by the root command.
type app struct {
	cfg Config
	log logging.Logger
}

func (a *app) options() []gexiv2.Option {
	return []gexiv2.Option{gexiv2.WithLogger(a.log)}
}

func newRootCommand() *cobra.Command {
	a := &app{log: logging.Discard()}

	root := &cobra.Command{
		Use:           "gexiv2-go",
		Short:         "Read and write Exif, XMP and IPTC metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindFlags(root.PersistentFlags())

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log = cfg.logger(cmd.ErrOrStderr())
		return nil
	}

	root.AddCommand(
		dumpCommand(a),
		getCommand(a),
		setCommand(a),
		clearCommand(a),
		versionCommand(),
	)
	return root
}
