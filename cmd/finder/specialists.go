package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func specialistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "specialists <query>",
		Short: "List specialists whose name contains the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			specialists, err := a.finder.Dependencies.Directory.FilterSpecialists(ctx, args[0])
			if err != nil {
				return err
			}
			if specialists == nil {
				return fmt.Errorf("query must be at least %d characters long", a.bootstrap.InternalConfig.App.MinQueryLength)
			}

			rows := make([][]string, 0, len(specialists))
			for _, specialist := range specialists {
				rows = append(rows, []string{specialist.ID.String(), specialist.FullName, specialist.Institution.IstgID.String()})
			}
			renderTable(cmd.OutOrStdout(), []string{"ID", "Specialistas", "Įstaiga"}, rows)
			return nil
		},
	}
}

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}
