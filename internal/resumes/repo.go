package resumes

import (
	"context"
	"errors"
	"time"

	"resume-builder-backend/resume/model"
)

// ErrNotFound is returned when no resume exists at (owner, name).
var ErrNotFound = errors.New("resume not found")

// Record is a stored resume with its extrinsic identity.
type Record struct {
	OwnerID   string               `json:"ownerId"`
	Name      string               `json:"name"`
	Doc       model.ResumeDocument `json:"doc"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Repo persists whole resume documents keyed by (owner, user-chosen name).
// Save overwrites: last write wins, no merge, no concurrency check. The repo
// performs no authorization; callers pass their own owner id.
type Repo interface {
	Save(ctx context.Context, ownerID, name string, doc model.ResumeDocument) error
	Load(ctx context.Context, ownerID, name string) (model.ResumeDocument, error)
	List(ctx context.Context, ownerID string) ([]Record, error)
	Delete(ctx context.Context, ownerID, name string) error
}
