package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// SQLiteStore is the bundled local implementation of Store, used when no
// remote API is configured. Nested blobs are stored as JSON text columns.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, status, website_url, repo_url, image_url,
		       tech_stack, files, item_type, created_at, change_history, git_state
		FROM projects
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Insert(ctx context.Context, r Record) error {
	techStack, changeHistory, gitState, createdAt, err := encodeColumns(r)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, description, status, website_url, repo_url,
		                      image_url, tech_stack, files, item_type, created_at,
		                      change_history, git_state)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Name, r.Description, r.Status, r.WebsiteURL, r.RepoURL,
		r.ImageURL, techStack, r.Files, r.ItemType, createdAt, changeHistory, gitState)
	return err
}

func (s *SQLiteStore) Update(ctx context.Context, id string, r Record) error {
	techStack, changeHistory, gitState, createdAt, err := encodeColumns(r)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, description = ?, status = ?, website_url = ?, repo_url = ?,
		    image_url = ?, tech_stack = ?, files = ?, item_type = ?, created_at = ?,
		    change_history = ?, git_state = ?
		WHERE id = ?
	`, r.Name, r.Description, r.Status, r.WebsiteURL, r.RepoURL,
		r.ImageURL, techStack, r.Files, r.ItemType, createdAt, changeHistory, gitState, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("project %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("project %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}

func encodeColumns(r Record) (techStack, changeHistory string, gitState sql.NullString, createdAt int64, err error) {
	ts := r.TechStack
	if ts == nil {
		ts = []string{}
	}
	tsData, err := json.Marshal(ts)
	if err != nil {
		return "", "", sql.NullString{}, 0, err
	}
	ch := r.ChangeHistory
	if ch == nil {
		ch = []ChangeLogRecord{}
	}
	chData, err := json.Marshal(ch)
	if err != nil {
		return "", "", sql.NullString{}, 0, err
	}
	if r.GitState != nil {
		gsData, err := json.Marshal(r.GitState)
		if err != nil {
			return "", "", sql.NullString{}, 0, err
		}
		gitState = sql.NullString{String: string(gsData), Valid: true}
	}
	return string(tsData), string(chData), gitState, r.CreatedAt.UnixMilli(), nil
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var r Record
	var techStack, changeHistory string
	var gitState sql.NullString
	var createdAt int64

	if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Status, &r.WebsiteURL,
		&r.RepoURL, &r.ImageURL, &techStack, &r.Files, &r.ItemType, &createdAt,
		&changeHistory, &gitState); err != nil {
		return Record{}, err
	}

	// Tolerate malformed blobs rather than failing the whole listing.
	_ = json.Unmarshal([]byte(techStack), &r.TechStack)
	_ = json.Unmarshal([]byte(changeHistory), &r.ChangeHistory)
	if gitState.Valid && gitState.String != "" {
		var gs GitStateRecord
		if err := json.Unmarshal([]byte(gitState.String), &gs); err == nil {
			r.GitState = &gs
		}
	}
	r.CreatedAt = Timestamp{time.UnixMilli(createdAt)}
	return r, nil
}
