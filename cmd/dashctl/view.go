package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newViewCmd(g *globalFlags) *cobra.Command {
	var (
		tf   tableFlags
		page int
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print one page of the campaign table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := tf.query(time.Now())
			if err != nil {
				return err
			}
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
			}
			q.Page.Page = page

			uc, err := g.newUseCase(cmd.Context())
			if err != nil {
				return err
			}
			res, err := uc.ListCampaigns(cmd.Context(), q)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Campaign\tStatus\tImpressions\tClicks\tConversions\tCTR\tCPC\tRevenue\tDate\t")
			for _, r := range res.Rows {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.2f%%\t$%.2f\t$%.2f\t%s\t\n",
					r.Campaign, r.Status.Title(), r.Impressions, r.Clicks, r.Conversions, r.CTR, r.CPC, r.Revenue, r.Date)
			}
			if err = tw.Flush(); err != nil {
				return err
			}

			first, last := 0, 0
			if len(res.Rows) > 0 {
				first = (res.Page-1)*res.PageSize + 1
				last = first + len(res.Rows) - 1
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d-%d of %d campaigns (page %d of %d, sorted by %s)\n",
				first, last, res.TotalCount, res.Page, res.TotalPages, res.Sort)
			return nil
		},
	}
	tf.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "1-based page number")
	return cmd
}
