package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories with their entry counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range app.store.CategoryNames() {
				cat, _ := app.store.Category(name)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", name, len(cat.Entries)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
