package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-builder-backend/resume/model"
)

// PGRepo implements Repo on Postgres, storing the document as jsonb.
type PGRepo struct {
	DB *sql.DB
}

// Save upserts the whole document at (owner, name).
func (r *PGRepo) Save(ctx context.Context, ownerID, name string, doc model.ResumeDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("save resume owner=%s name=%s: marshal: %w", ownerID, name, err)
	}
	const query = `
INSERT INTO resumes (owner_id, name, doc, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (owner_id, name)
DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`
	if _, err := r.DB.ExecContext(ctx, query, ownerID, name, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("save resume owner=%s name=%s: %w", ownerID, name, err)
	}
	return nil
}

// Load returns the document at (owner, name) or ErrNotFound.
func (r *PGRepo) Load(ctx context.Context, ownerID, name string) (model.ResumeDocument, error) {
	const query = `SELECT doc FROM resumes WHERE owner_id = $1 AND name = $2`
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, ownerID, name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ResumeDocument{}, ErrNotFound
		}
		return model.ResumeDocument{}, fmt.Errorf("load resume owner=%s name=%s: %w", ownerID, name, err)
	}
	var doc model.ResumeDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return model.ResumeDocument{}, fmt.Errorf("load resume owner=%s name=%s: decode: %w", ownerID, name, err)
	}
	return doc.Normalize(), nil
}

// List returns every resume under the owner. Order is by name for
// determinism; callers may re-sort.
func (r *PGRepo) List(ctx context.Context, ownerID string) ([]Record, error) {
	const query = `SELECT name, doc, updated_at FROM resumes WHERE owner_id = $1 ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list resumes owner=%s: %w", ownerID, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		record := Record{OwnerID: ownerID}
		var payload []byte
		if err := rows.Scan(&record.Name, &payload, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list resumes owner=%s: %w", ownerID, err)
		}
		if err := json.Unmarshal(payload, &record.Doc); err != nil {
			return nil, fmt.Errorf("list resumes owner=%s name=%s: decode: %w", ownerID, record.Name, err)
		}
		record.Doc = record.Doc.Normalize()
		out = append(out, record)
	}
	return out, rows.Err()
}

// Delete removes the resume at (owner, name).
func (r *PGRepo) Delete(ctx context.Context, ownerID, name string) error {
	const query = `DELETE FROM resumes WHERE owner_id = $1 AND name = $2`
	res, err := r.DB.ExecContext(ctx, query, ownerID, name)
	if err != nil {
		return fmt.Errorf("delete resume owner=%s name=%s: %w", ownerID, name, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
