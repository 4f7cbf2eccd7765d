package database

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateTable creates the notes table if it does not exist yet.
func CreateTable(ctx context.Context, db *sql.DB, tableName string) error {
	if err := db.PingContext(ctx); err != nil {
		return err
	}

	createTableExec := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id BIGINT AUTO_INCREMENT NOT NULL,
			guid VARCHAR(16) NOT NULL,
			simplified VARCHAR(64) NOT NULL,
			traditional VARCHAR(64) NOT NULL,
			pinyin VARCHAR(1024) NOT NULL,
			taiwan_pinyin VARCHAR(1024) NOT NULL,
			definitions TEXT NOT NULL,
			classifiers VARCHAR(1024) NOT NULL,
			tags VARCHAR(255) NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY guid (guid)
		) DEFAULT CHARSET=utf8mb4`, tableName)
	_, err := db.ExecContext(ctx, createTableExec)

	return err
}
