package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/export"
)

func newExportCmd(g *globalFlags) *cobra.Command {
	var (
		tf     tableFlags
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered campaign table to a file",
		Long: `Write every campaign matching the filters, in the requested order, to
<out>.csv or <out>.pdf. Nothing is written when no campaign matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			q, err := tf.query(time.Now())
			if err != nil {
				return err
			}
			uc, err := g.newUseCase(cmd.Context())
			if err != nil {
				return err
			}

			dir, base := filepath.Split(out)
			file, err := uc.ExportCampaigns(cmd.Context(), q, f, base)
			if errors.Is(err, domain.ErrNoData) {
				return errors.New("no data to export for the current filters")
			}
			if err != nil {
				return err
			}

			path := filepath.Join(dir, file.Name)
			if err = os.WriteFile(path, file.Body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d campaigns to %s\n", file.Rows, path)
			return nil
		},
	}
	tf.register(cmd)
	cmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "csv or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", export.DefaultBaseName, "output path without extension")
	return cmd
}
