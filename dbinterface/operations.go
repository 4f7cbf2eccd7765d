// Package dbinterface stores rendered flashcard notes in MySQL.
package dbinterface

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"unicode"

	"github.com/flashcards/zhdeck/card"
	"github.com/go-sql-driver/mysql"
)

func Connect(ctx context.Context, cfg mysql.Config, tableName string) (*DatabaseConn, error) {
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	slog.Info("connected to database", slog.String("addr", cfg.Addr), slog.String("table", tableName))

	return NewDatabaseConn(db, tableName), nil
}

// NewDatabaseConn wraps an open handle. Close closes db.
func NewDatabaseConn(db *sql.DB, tableName string) *DatabaseConn {
	return &DatabaseConn{
		db:        db,
		tableName: tableName,
	}
}

// DB returns the underlying handle, e.g. for creating the table.
func (dbc *DatabaseConn) DB() *sql.DB {
	return dbc.db
}

func verifyLanguage(term string) error {
	for _, c := range term {
		if !unicode.Is(unicode.Han, c) {
			return &ErrUnexpectedLanguage{expectedLanguage: "Chinese", term: string(c)}
		}
	}
	return nil
}

func addIfNotDuplicate(ctx context.Context, dbc *DatabaseConn, c card.Card) (*int64, error) {
	foundId, err := dbc.findGUID(ctx, c.GUID)
	var notFound *ErrNotFound
	if !errors.As(err, &notFound) && err != nil {
		return nil, err
	}
	if len(foundId) != 0 {
		slog.Debug("note already exists", slog.String("simplified", c.Simplified), slog.Any("ids", foundId))
		return nil, nil
	}

	id, err := dbc.addNote(ctx, c)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Add inserts every card whose GUID is not stored yet and returns the IDs of
// the inserted rows.
func Add(ctx context.Context, dbc *DatabaseConn, cards ...card.Card) ([]int64, error) {
	var addedIds []int64
	for _, c := range cards {
		id, err := addIfNotDuplicate(ctx, dbc, c)
		if err != nil {
			return addedIds, err
		}
		if id != nil {
			addedIds = append(addedIds, *id)
		}
	}
	return addedIds, nil
}

// Delete removes the note with the given GUID.
func Delete(ctx context.Context, dbc *DatabaseConn, guid string) error {
	return dbc.deleteNote(ctx, guid)
}

// Find returns the notes whose simplified or traditional form contains term.
func Find(ctx context.Context, dbc *DatabaseConn, term string) (map[int64]card.Card, error) {
	err := verifyLanguage(term)
	if err != nil {
		return nil, err
	}

	notes, err := dbc.findAllNotesWithSubstring(ctx, term)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func List(ctx context.Context, dbc *DatabaseConn) (map[int64]card.Card, error) {
	listAll, err := dbc.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return listAll, nil
}
