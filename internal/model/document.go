package model

import "time"

// Document is the metadata record for a generated artifact.
// This is a pure domain model with no database-specific dependencies or tags.
// The Filename is the sole external identifier used for download and deletion.
type Document struct {
	ID             string    `json:"id"`
	Filename       string    `json:"filename"`
	StoragePath    string    `json:"storage_path"`
	UniversityCode string    `json:"university_code"`
	DocumentType   string    `json:"document_type"`
	StudentName    string    `json:"student_name"`
	Size           int64     `json:"size"`
	ContentType    string    `json:"content_type"`
	CreatedAt      time.Time `json:"created_at"`
}

// DocxContentType is the MIME type of generated artifacts.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
