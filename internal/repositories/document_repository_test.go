package repositories

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDocumentCreateAndGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	doc := models.Document{
		ID:          "d-1",
		TripID:      4,
		Kind:        "manifest",
		FileName:    "MANIFEST_x.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.3"),
		CreatedAt:   now,
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(doc.ID, doc.TripID, doc.Kind, doc.FileName, doc.ContentType, doc.Data, doc.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM documents").WithArgs("d-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "kind", "file_name", "content_type", "data", "created_at"}).
			AddRow(doc.ID, doc.TripID, doc.Kind, doc.FileName, doc.ContentType, doc.Data, now))

	repo := DocumentRepository{DB: db}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	got, err := repo.GetByID(context.Background(), "d-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.FileName != doc.FileName || string(got.Data) != "%PDF-1.3" {
		t.Fatalf("unexpected document %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDocumentCreateRejectsEmpty(t *testing.T) {
	repo := DocumentRepository{}
	if err := repo.Create(context.Background(), models.Document{ID: "x", TripID: 1}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
