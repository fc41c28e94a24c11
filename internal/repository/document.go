package repository

import (
	"context"

	"unidocs/internal/model"
)

// DocumentRepository is the generation-record index: one row per persisted
// artifact, keyed externally by filename. SQL only, no business logic.
type DocumentRepository interface {
	// Create inserts a new generation record. The caller provides ID and
	// CreatedAt; the stored record is returned (may include DB-set values).
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByFilename returns the record for an artifact filename.
	FindByFilename(ctx context.Context, filename string) (*model.Document, error)

	// List returns a page of records newest first plus the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// DeleteByFilename removes the record for an artifact. It returns nil when
	// the row was deleted or did not exist.
	DeleteByFilename(ctx context.Context, filename string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
