package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/travel-discovery/internal/model"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in categories, destinations and restaurants",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Categories:")
			for _, c := range model.Categories() {
				fmt.Fprintf(out, "  %s %s\n", c.Icon, c.Name)
			}

			fmt.Fprintln(out, "\nPopular destinations:")
			for _, d := range model.Destinations() {
				fmt.Fprintf(out, "  %s, %s (%s)\n", d.Name, d.Country, d.Location)
				for _, a := range d.Attractions {
					fmt.Fprintf(out, "    📍 %s\n", a.Name)
				}
			}

			fmt.Fprintln(out, "\nPopular places to eat:")
			for _, r := range model.Restaurants() {
				fmt.Fprintf(out, "  %s  %s  %s\n", r.Name, r.Summary(), r.Location)
			}
			return nil
		},
	}
	return cmd
}
