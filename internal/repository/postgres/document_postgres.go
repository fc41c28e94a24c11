package postgres

import (
	"context"
	"database/sql"

	"unidocs/internal/model"
	"unidocs/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of
// repository.DocumentRepository. Parameterized queries only.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const docColumns = `id, filename, storage_path, university_code, document_type, student_name, size, content_type, created_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Filename,
		&d.StoragePath,
		&d.UniversityCode,
		&d.DocumentType,
		&d.StudentName,
		&d.Size,
		&d.ContentType,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new generation record and returns the stored row.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (` + docColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + docColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Filename,
		doc.StoragePath,
		doc.UniversityCode,
		doc.DocumentType,
		doc.StudentName,
		doc.Size,
		doc.ContentType,
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByFilename fetches a single record by artifact filename.
func (r *DocumentPostgres) FindByFilename(ctx context.Context, filename string) (*model.Document, error) {
	const q = `
		SELECT ` + docColumns + `
		FROM documents
		WHERE filename = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, filename))
}

// List returns records using LIMIT/OFFSET pagination and a total count.
func (r *DocumentPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	const qCount = `SELECT COUNT(*) FROM documents`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + docColumns + `
		FROM documents
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// DeleteByFilename removes a record. Missing rows are not an error: the
// content store is the source of truth for existence.
func (r *DocumentPostgres) DeleteByFilename(ctx context.Context, filename string) error {
	const q = `DELETE FROM documents WHERE filename = $1`
	res, err := r.db.ExecContext(ctx, q, filename)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
