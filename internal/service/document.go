package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"unidocs/internal/generator"
	"unidocs/internal/model"
	"unidocs/internal/registry"
	"unidocs/internal/repository"
	"unidocs/internal/storage"
)

var (
	ErrFilenameRequired = errors.New("filename is required")
	ErrFilenameInvalid  = errors.New("filename is invalid")
	ErrNotFound         = errors.New("document not found")
)

// ValidationError reports malformed or missing student fields. It is raised
// before composition, so rendering never sees invalid input.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Problems, "; ")
}

// DocumentEntry is one row of a content-store listing.
type DocumentEntry struct {
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
	DownloadURL string    `json:"download_url"`
}

// DocumentListResult is the service-level DTO for paginated listings.
type DocumentListResult struct {
	Items []DocumentEntry `json:"data"`
	Total int             `json:"total"`
}

// DocumentService defines the document generation use cases.
type DocumentService interface {
	// Generate produces, persists and indexes one document. Failure at any
	// stage short-circuits the rest; no partial artifacts survive.
	Generate(ctx context.Context, req model.DocumentRequest) (*model.Document, error)

	// Validate dry-runs request validation and returns the problem list
	// (empty means valid). It never generates anything.
	Validate(req model.DocumentRequest) []string

	// List returns content-store entries newest first using limit/offset.
	List(ctx context.Context, limit, offset int) (*DocumentListResult, error)

	// Get returns the indexed metadata for an artifact filename.
	Get(ctx context.Context, filename string) (*model.Document, error)

	// Download streams an artifact's content from the store.
	Download(ctx context.Context, filename string) (io.ReadCloser, storage.ObjectInfo, error)

	// Delete removes an artifact and its index row. A second delete of the
	// same filename returns ErrNotFound.
	Delete(ctx context.Context, filename string) error
}

// documentService is the concrete DocumentService.
type documentService struct {
	gen   *generator.Generator
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(gen *generator.Generator, store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{gen: gen, store: store, repo: repo}
}

// DownloadURL is the retrieval path suffix for an artifact.
func DownloadURL(filename string) string {
	return "/download/" + filename
}

func (s *documentService) Generate(ctx context.Context, req model.DocumentRequest) (*model.Document, error) {
	profile, err := registry.LookupUniversity(req.UniversityCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, req.UniversityCode)
	}
	tpl, err := registry.LookupTemplate(req.DocumentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, req.DocumentType)
	}
	if problems := validateStudent(req.StudentData); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	doc, err := s.gen.Compose(profile, tpl, req.StudentData)
	if err != nil {
		return nil, err
	}
	content, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}

	filename := s.gen.Filename(req.DocumentType, req.StudentData.StudentName, req.StudentData.Purpose)

	objInfo, err := s.store.Put(ctx, filename, bytes.NewReader(content), storage.PutObjectOptions{
		Size:        int64(len(content)),
		ContentType: model.DocxContentType,
		Metadata: map[string]string{
			"university-code": req.UniversityCode,
			"document-type":   req.DocumentType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("persist document: %w", err)
	}

	record := &model.Document{
		ID:             uuid.New().String(),
		Filename:       filename,
		StoragePath:    objInfo.Key,
		UniversityCode: req.UniversityCode,
		DocumentType:   req.DocumentType,
		StudentName:    req.StudentData.StudentName,
		Size:           objInfo.Size,
		ContentType:    model.DocxContentType,
		CreatedAt:      time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, record)
	if err != nil {
		// Roll back the stored object so a failed generation leaves nothing.
		if delErr := s.store.Delete(ctx, filename); delErr != nil {
			return nil, fmt.Errorf("index save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("index save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) Validate(req model.DocumentRequest) []string {
	problems := make([]string, 0)
	if _, err := registry.LookupUniversity(req.UniversityCode); err != nil {
		problems = append(problems, fmt.Sprintf("Invalid university code: %s", req.UniversityCode))
	}
	if _, err := registry.LookupTemplate(req.DocumentType); err != nil {
		problems = append(problems, fmt.Sprintf("Invalid document type: %s", req.DocumentType))
	}
	return append(problems, validateStudent(req.StudentData)...)
}

// validateStudent applies the business rules for required fields and email
// shape. Email, phone and year_of_study stay optional.
func validateStudent(sd model.StudentData) []string {
	var problems []string
	required := []struct {
		value string
		msg   string
	}{
		{sd.StudentName, "Student name is required"},
		{sd.RollNumber, "Roll number is required"},
		{sd.Course, "Course is required"},
		{sd.Department, "Department is required"},
		{sd.AdmissionDate, "Admission date is required"},
		{sd.Purpose, "Purpose is required"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			problems = append(problems, f.msg)
		}
	}
	if sd.Email != "" && !strings.Contains(sd.Email, "@") {
		problems = append(problems, "Invalid email format")
	}
	return problems
}

// List pages over the content store, newest first. Only artifacts with the
// generated extension are listed; temp or foreign files in the directory are
// ignored.
func (s *documentService) List(ctx context.Context, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	objects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	entries := make([]DocumentEntry, 0, len(objects))
	for _, o := range objects {
		if !strings.HasSuffix(o.Key, generator.Extension) {
			continue
		}
		entries = append(entries, DocumentEntry{
			Filename:    o.Key,
			Size:        o.Size,
			CreatedAt:   o.LastModified,
			DownloadURL: DownloadURL(o.Key),
		})
	}

	total := len(entries)
	if offset >= total {
		return &DocumentListResult{Items: []DocumentEntry{}, Total: total}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return &DocumentListResult{Items: entries[offset:end], Total: total}, nil
}

func (s *documentService) Get(ctx context.Context, filename string) (*model.Document, error) {
	if err := checkFilename(filename); err != nil {
		return nil, err
	}
	doc, err := s.repo.FindByFilename(ctx, filename)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Download(ctx context.Context, filename string) (io.ReadCloser, storage.ObjectInfo, error) {
	if err := checkFilename(filename); err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	rc, info, err := s.store.Get(ctx, filename)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("fetch document: %w", err)
	}
	return rc, info, nil
}

// Delete removes the object first, then its index row. A missing index row is
// tolerated so a store/index mismatch never strands an artifact.
func (s *documentService) Delete(ctx context.Context, filename string) error {
	if err := checkFilename(filename); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, filename); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete document: %w", err)
	}
	return s.repo.DeleteByFilename(ctx, filename)
}

// checkFilename rejects empty names and anything carrying path separators or
// traversal segments: the filename is an external identifier and must never
// reach the filesystem as a path.
func checkFilename(filename string) error {
	if filename == "" {
		return ErrFilenameRequired
	}
	if strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		return ErrFilenameInvalid
	}
	return nil
}
