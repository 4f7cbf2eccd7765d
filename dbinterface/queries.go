package dbinterface

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/flashcards/zhdeck/card"
)

type DatabaseConn struct {
	db        *sql.DB
	tableName string
}

const noteColumns = "id, guid, simplified, traditional, pinyin, taiwan_pinyin, definitions, classifiers, tags"

// Close closes the underlying database handle.
func (dbc *DatabaseConn) Close() error {
	return dbc.db.Close()
}

func (dbc *DatabaseConn) findGUID(ctx context.Context, guid string) ([]int64, error) {
	query := fmt.Sprintf("SELECT id FROM %s WHERE guid = ?", dbc.tableName)
	rows, err := dbc.db.QueryContext(ctx, query, guid)
	if err != nil {
		return nil, fmt.Errorf("findGUID %q: %v", guid, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("findGUID %q: %v", guid, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("findGUID %q: %v", guid, err)
	}

	if len(ids) == 0 {
		return nil, &ErrNotFound{term: guid}
	}

	return ids, nil
}

func (dbc *DatabaseConn) findAllNotesWithSubstring(ctx context.Context, termToFind string) (map[int64]card.Card, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE simplified LIKE ? OR traditional LIKE ?", noteColumns, dbc.tableName)
	pattern := "%" + termToFind + "%"
	notes, err := dbc.queryNotes(ctx, query, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("findAllNotesWithSubstring %q: %v", termToFind, err)
	}

	if len(notes) == 0 {
		return nil, &ErrNotFound{term: termToFind}
	}

	return notes, nil
}

func (dbc *DatabaseConn) addNote(ctx context.Context, c card.Card) (int64, error) {
	exec := fmt.Sprintf(`INSERT INTO %s (guid, simplified, traditional, pinyin, taiwan_pinyin, definitions, classifiers, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, dbc.tableName)
	result, err := dbc.db.ExecContext(ctx, exec,
		c.GUID, c.Simplified, c.Traditional, c.Pinyin, c.TaiwanPinyin, c.Definitions, c.Classifiers, formatTags(c.Tags))
	if err != nil {
		return 0, fmt.Errorf("addNote: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("addNote: %v", err)
	}
	return id, nil
}

func (dbc *DatabaseConn) deleteNote(ctx context.Context, guid string) error {
	ids, err := dbc.findGUID(ctx, guid)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE guid = ?", dbc.tableName)
	result, err := dbc.db.ExecContext(ctx, query, guid)
	if err != nil {
		return fmt.Errorf("deleteNote: %v", err)
	}

	num, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleteNote: %v", err)
	}
	if num != int64(len(ids)) {
		return fmt.Errorf("deleteNote: %d rows deleted, expected %d", num, len(ids))
	}
	return nil
}

func (dbc *DatabaseConn) listAll(ctx context.Context) (map[int64]card.Card, error) {
	notes, err := dbc.queryNotes(ctx, fmt.Sprintf("SELECT %s FROM %s", noteColumns, dbc.tableName))
	if err != nil {
		return nil, fmt.Errorf("listAll: %v", err)
	}
	return notes, nil
}

func (dbc *DatabaseConn) queryNotes(ctx context.Context, query string, args ...any) (map[int64]card.Card, error) {
	rows, err := dbc.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make(map[int64]card.Card)
	for rows.Next() {
		var id int64
		var c card.Card
		var tags string
		if err := rows.Scan(&id, &c.GUID, &c.Simplified, &c.Traditional, &c.Pinyin,
			&c.TaiwanPinyin, &c.Definitions, &c.Classifiers, &tags); err != nil {
			return nil, err
		}
		c.Tags = strings.Fields(tags)
		notes[id] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

// formatTags stores tags space-separated with surrounding spaces, so a tag can
// be matched with LIKE '% tag %'.
func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return " " + strings.Join(tags, " ") + " "
}
