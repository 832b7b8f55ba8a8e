package resumes

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-builder-backend/resume/model"
)

func TestPGRepoSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("INSERT INTO resumes").
		WithArgs("owner-1", "backend-2026", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), "owner-1", "backend-2026", model.Example()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoLoadRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	doc := model.Example()
	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT doc FROM resumes").
		WithArgs("owner-1", "backend-2026").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(payload))

	got, err := repo.Load(context.Background(), "owner-1", "backend-2026")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("loaded document differs\n got: %+v\nwant: %+v", got, doc)
	}
}

func TestPGRepoLoadNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT doc FROM resumes").
		WithArgs("owner-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	if _, err := repo.Load(context.Background(), "owner-1", "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListDecodesRecords(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	doc := model.Example()
	payload, _ := json.Marshal(doc)
	now := time.Now().UTC()

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT name, doc, updated_at FROM resumes").
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"name", "doc", "updated_at"}).
			AddRow("backend-2026", payload, now).
			AddRow("platform-2026", payload, now))

	records, err := repo.List(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "backend-2026" || records[0].OwnerID != "owner-1" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestPGRepoDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("owner-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "owner-1", "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
