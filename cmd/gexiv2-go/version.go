package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2"
)

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wrapper and native library versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gexiv2-go %s\n", gexiv2.WrapperVersion())
			if err := gexiv2.Initialize(); err != nil {
				fmt.Fprintf(out, "gexiv2 unavailable: %v\n", err)
				return nil
			}
			fmt.Fprintf(out, "gexiv2 %s\n", gexiv2.NativeVersion())
			return nil
		},
	}
}
