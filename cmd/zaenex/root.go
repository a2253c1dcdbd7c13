package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zaenex",
		Short: "ZaenexTech marketing website",
		Long: `zaenex serves the ZaenexTech website: fixed pages, service detail
pages built from the service catalog, and the static asset tree.
Configuration comes from the environment (PORT, NODE_ENV, CANONICAL_HOST,
LOG_LEVEL, ASSET_DIR, CORS_ORIGINS, MAX_BODY_BYTES).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newRoutesCmd(), newSitemapCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of zaenex",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zaenex %s\n", Version)
		},
	}
}
