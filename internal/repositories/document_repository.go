package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// DocumentRepository stores generated files (manifests) in the documents table.
type DocumentRepository struct {
	DB *sql.DB
}

func (r DocumentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DocumentRepository) Create(ctx context.Context, doc models.Document) error {
	if strings.TrimSpace(doc.ID) == "" || doc.TripID <= 0 {
		return domain.ValidationError{Field: "document", Msg: "document id and trip id are required"}
	}
	if len(doc.Data) == 0 {
		return domain.ValidationError{Field: "document", Msg: "document is empty"}
	}
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "db not available"}
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO documents (id, trip_id, kind, file_name, content_type, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.TripID, doc.Kind, doc.FileName, doc.ContentType, doc.Data, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (r DocumentRepository) GetByID(ctx context.Context, id string) (models.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Document{}, domain.ValidationError{Field: "document_id", Msg: "invalid document id"}
	}
	db := r.db()
	if db == nil {
		return models.Document{}, domain.InternalError{Msg: "db not available"}
	}
	var doc models.Document
	err := db.QueryRowContext(ctx, `
		SELECT id, trip_id, kind, file_name, content_type, data, created_at
		FROM documents
		WHERE id=? LIMIT 1
	`, id).Scan(&doc.ID, &doc.TripID, &doc.Kind, &doc.FileName, &doc.ContentType, &doc.Data, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, domain.NotFoundError{Resource: "document", Err: err}
		}
		return models.Document{}, fmt.Errorf("get document %s: %w", id, err)
	}
	return doc, nil
}
