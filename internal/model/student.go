package model

// StudentData carries the fields interpolated into a document body.
// Email, Phone and YearOfStudy are accepted on requests but not consumed by
// any current template.
type StudentData struct {
	StudentName   string `json:"student_name"`
	RollNumber    string `json:"roll_number"`
	Course        string `json:"course"`
	Department    string `json:"department"`
	YearOfStudy   string `json:"year_of_study,omitempty"`
	AdmissionDate string `json:"admission_date"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Purpose       string `json:"purpose"`
}

// DocumentRequest is the generation request body.
type DocumentRequest struct {
	UniversityCode string      `json:"university_code"`
	DocumentType   string      `json:"document_type"`
	StudentData    StudentData `json:"student_data"`
}
