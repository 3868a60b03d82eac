package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cmdwiki/internal/catalog"
	"cmdwiki/internal/domain"
)

func newListCmd(app *App) *cobra.Command {
	var (
		q        string
		category string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the entries matching a search and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := filteredView(app, q, category)
			if err != nil {
				return err
			}

			switch format {
			case "text":
				return writeText(cmd.OutOrStdout(), view)
			case "yaml":
				return catalog.Encode(cmd.OutOrStdout(), asCatalog(view))
			default:
				return fmt.Errorf("unknown format: %q (want text or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&q, "query", "", "Search text (case-insensitive, matches title, command and description)")
	cmd.Flags().StringVar(&category, "category", "", "Only show this category")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text|yaml)")

	return cmd
}

func writeText(w io.Writer, view domain.FilteredView) error {
	if len(view) == 0 {
		_, err := fmt.Fprintln(w, "No entries found matching your search.")
		return err
	}

	var b strings.Builder
	for i, cat := range view {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%d)\n", cat.Name, len(cat.Entries))
		for _, e := range cat.Entries {
			fmt.Fprintf(&b, "  %s\n", e.Entry.Title)
			if e.Entry.HasDescription() {
				fmt.Fprintf(&b, "    # %s\n", e.Entry.DescriptionText())
			}
			for _, line := range strings.Split(e.Entry.Command, "\n") {
				fmt.Fprintf(&b, "    %s\n", line)
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
