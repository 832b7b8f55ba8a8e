package resumes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resume-builder-backend/resume/model"
)

// MongoRepo implements Repo on a document database, the closest match to the
// original users/{owner}/resumes/{name} layout.
type MongoRepo struct {
	col *mongo.Collection
}

// NewMongoRepo constructs a MongoRepo over the "resumes" collection.
func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection("resumes")}
}

type mongoRecord struct {
	OwnerID   string               `bson:"owner_id"`
	Name      string               `bson:"name"`
	Doc       model.ResumeDocument `bson:"doc"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

// Save replaces the whole document at (owner, name), inserting when absent.
func (r *MongoRepo) Save(ctx context.Context, ownerID, name string, doc model.ResumeDocument) error {
	record := mongoRecord{
		OwnerID:   ownerID,
		Name:      name,
		Doc:       doc,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"owner_id": ownerID, "name": name},
		record,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save resume owner=%s name=%s: %w", ownerID, name, err)
	}
	return nil
}

// Load returns the document at (owner, name) or ErrNotFound.
func (r *MongoRepo) Load(ctx context.Context, ownerID, name string) (model.ResumeDocument, error) {
	var record mongoRecord
	err := r.col.FindOne(ctx, bson.M{"owner_id": ownerID, "name": name}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.ResumeDocument{}, ErrNotFound
	}
	if err != nil {
		return model.ResumeDocument{}, fmt.Errorf("load resume owner=%s name=%s: %w", ownerID, name, err)
	}
	return record.Doc.Normalize(), nil
}

// List returns every resume under the owner in unspecified order.
func (r *MongoRepo) List(ctx context.Context, ownerID string) ([]Record, error) {
	cursor, err := r.col.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list resumes owner=%s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var out []Record
	for cursor.Next(ctx) {
		var record mongoRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, fmt.Errorf("list resumes owner=%s: decode: %w", ownerID, err)
		}
		out = append(out, Record{
			OwnerID:   record.OwnerID,
			Name:      record.Name,
			Doc:       record.Doc.Normalize(),
			UpdatedAt: record.UpdatedAt,
		})
	}
	return out, cursor.Err()
}

// Delete removes the resume at (owner, name).
func (r *MongoRepo) Delete(ctx context.Context, ownerID, name string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"owner_id": ownerID, "name": name})
	if err != nil {
		return fmt.Errorf("delete resume owner=%s name=%s: %w", ownerID, name, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*MongoRepo)(nil)
