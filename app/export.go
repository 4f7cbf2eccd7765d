package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/flashcards/zhdeck/card"
	"github.com/flashcards/zhdeck/database"
	"github.com/flashcards/zhdeck/dbinterface"
)

// WriteJSONLines writes one JSON object per card.
func WriteJSONLines(w io.Writer, cards []card.Card) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, c := range cards {
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("write card %s: %w", c.Simplified, err)
		}
	}
	return nil
}

// Export creates the notes table if needed and stores every card that is not
// there yet. It returns the number of inserted notes.
func Export(ctx context.Context, log *slog.Logger, dbc *dbinterface.DatabaseConn, table string, cards []card.Card) (int, error) {
	if err := database.CreateTable(ctx, dbc.DB(), table); err != nil {
		return 0, fmt.Errorf("create table %s: %w", table, err)
	}

	ids, err := dbinterface.Add(ctx, dbc, cards...)
	if err != nil {
		return len(ids), fmt.Errorf("export notes: %w", err)
	}

	log.Info("notes exported",
		slog.String("table", table),
		slog.Int("inserted", len(ids)),
		slog.Int("skipped", len(cards)-len(ids)),
	)
	return len(ids), nil
}
