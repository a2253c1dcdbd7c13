package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zaenextech/website/internal/catalog"
	"github.com/zaenextech/website/internal/domain"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print every page route with its template and active nav entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Embedded()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tTEMPLATE\tACTIVE")
			for _, r := range domain.Routes() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Path, r.Template, r.ActivePage)
			}
			for _, s := range cat.All() {
				fmt.Fprintf(tw, "/services/%s\tservice-detail\t%s\n", s.Slug, domain.NavServices)
			}
			fmt.Fprintln(tw, "/healthz\t-\t-")
			return tw.Flush()
		},
	}
}
