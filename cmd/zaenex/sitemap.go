package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zaenextech/website/internal/catalog"
	"github.com/zaenextech/website/internal/domain"
	"github.com/zaenextech/website/internal/sitemap"
)

func newSitemapCmd() *cobra.Command {
	var (
		baseURL string
		out     string
	)
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Generate sitemap.xml from the route table and service catalog",
		Long: `Generate sitemap.xml listing every fixed page and every service detail
page. Use --out - to print to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Embedded()
			if err != nil {
				return err
			}
			data, err := sitemap.Build(baseURL, domain.Routes(), cat.All())
			if err != nil {
				return err
			}
			if out == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := sitemap.WriteFile(out, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "https://zaenextech.com", "absolute site URL used in <loc> entries")
	cmd.Flags().StringVarP(&out, "out", "o", "web/static/sitemap.xml", "output file, or - for stdout")
	return cmd
}
