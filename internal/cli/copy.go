package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cmdwiki/internal/eventbus"
	"cmdwiki/internal/ui/logic"
)

var errNoMatch = errors.New("no entry matches")

func newCopyCmd(app *App) *cobra.Command {
	var (
		q        string
		category string
		index    int
	)

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the command of the Nth matching entry to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := filteredView(app, q, category)
			if err != nil {
				return err
			}
			rows := logic.Flatten(view)
			if len(rows) == 0 {
				return fmt.Errorf("%w %q", errNoMatch, q)
			}
			if index < 1 || index > len(rows) {
				return fmt.Errorf("index %d out of range: %d entries match", index, len(rows))
			}

			row := rows[index-1]
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), row.Entry.Entry.Command); err != nil {
				return err
			}
			if err := app.writeClipboard(row.Entry.Entry.Command); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}

			app.logger.Debug("copied from cli", zap.String("title", row.Entry.Entry.Title))
			app.bus.Publish(eventbus.EntryCopiedEvent{Key: row.Entry.Key})
			return nil
		},
	}

	cmd.Flags().StringVar(&q, "query", "", "Search text")
	cmd.Flags().StringVar(&category, "category", "", "Only consider this category")
	cmd.Flags().IntVar(&index, "index", 1, "Which match to copy (1-based)")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}
