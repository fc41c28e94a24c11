package generator

import (
	"regexp"
	"strings"

	"unidocs/internal/model"
)

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Honorific is prefixed to the student name before substitution.
const Honorific = "Mr./Ms. "

// fieldMap exposes the renderable student fields under their placeholder
// names. Email, phone and year_of_study are intentionally absent: no current
// template consumes them.
func fieldMap(student model.StudentData) map[string]string {
	return map[string]string{
		"student_name":   Honorific + student.StudentName,
		"roll_number":    student.RollNumber,
		"course":         student.Course,
		"department":     student.Department,
		"admission_date": student.AdmissionDate,
		"purpose":        student.Purpose,
	}
}

// renderBody substitutes every {placeholder} token in the template body.
// A token with no corresponding field fails with a RenderError.
func renderBody(body string, student model.StudentData) (string, error) {
	fields := fieldMap(student)
	var missing string
	out := placeholderPattern.ReplaceAllStringFunc(body, func(tok string) string {
		name := strings.Trim(tok, "{}")
		v, ok := fields[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return tok
		}
		return v
	})
	if missing != "" {
		return "", &RenderError{Placeholder: missing}
	}
	return out, nil
}
