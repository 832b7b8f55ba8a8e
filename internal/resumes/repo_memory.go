package resumes

import (
	"context"
	"sync"
	"time"

	"resume-builder-backend/resume/model"
)

// MemoryRepo is an in-memory implementation of Repo for development and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]Record // ownerID -> name -> record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]map[string]Record)}
}

// Save stores a deep copy so callers cannot mutate persisted state.
func (r *MemoryRepo) Save(ctx context.Context, ownerID, name string, doc model.ResumeDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	owned, ok := r.data[ownerID]
	if !ok {
		owned = make(map[string]Record)
		r.data[ownerID] = owned
	}
	owned[name] = Record{
		OwnerID:   ownerID,
		Name:      name,
		Doc:       doc.Clone(),
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

// Load returns a deep copy of the stored document.
func (r *MemoryRepo) Load(ctx context.Context, ownerID, name string) (model.ResumeDocument, error) {
	if err := ctx.Err(); err != nil {
		return model.ResumeDocument{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.data[ownerID][name]
	if !ok {
		return model.ResumeDocument{}, ErrNotFound
	}
	return record.Doc.Clone(), nil
}

// List returns all records for an owner in unspecified order.
func (r *MemoryRepo) List(ctx context.Context, ownerID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	owned := r.data[ownerID]
	out := make([]Record, 0, len(owned))
	for _, record := range owned {
		record.Doc = record.Doc.Clone()
		out = append(out, record)
	}
	return out, nil
}

// Delete removes the record at (owner, name).
func (r *MemoryRepo) Delete(ctx context.Context, ownerID, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	owned := r.data[ownerID]
	if _, ok := owned[name]; !ok {
		return ErrNotFound
	}
	delete(owned, name)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
