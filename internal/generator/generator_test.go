package generator

import (
	"strings"
	"sync"
	"testing"
	"time"

	"unidocs/internal/model"
	"unidocs/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
}

func sampleStudent() model.StudentData {
	return model.StudentData{
		StudentName:   "John Smith",
		RollNumber:    "CS2024001",
		Course:        "Bachelor of Science (B.Sc.)",
		Department:    "Computer Science",
		YearOfStudy:   "2nd Year",
		AdmissionDate: "2023-08-15",
		Purpose:       "Internship application",
	}
}

func TestFilename(t *testing.T) {
	g := NewWithClock(fixedClock())

	tests := []struct {
		name       string
		typeCode   string
		student    string
		purpose    string
		wantPrefix string
	}{
		{
			name:       "spaces become underscores",
			typeCode:   "bonafide",
			student:    "John Smith",
			purpose:    "Internship application",
			wantPrefix: "bonafide_John_Smith_Internship_applicati_20240315_103000_",
		},
		{
			name:       "path separators sanitized",
			typeCode:   "noc",
			student:    "a/b\\c",
			purpose:    "x/y",
			wantPrefix: "noc_a_b_c_x_y_20240315_103000_",
		},
		{
			name:       "purpose truncated to 20 chars",
			typeCode:   "transcript",
			student:    "Jane",
			purpose:    strings.Repeat("z", 50),
			wantPrefix: "transcript_Jane_" + strings.Repeat("z", 20) + "_20240315_103000_",
		},
		{
			name:       "empty inputs still produce a valid name",
			typeCode:   "character",
			student:    "",
			purpose:    "",
			wantPrefix: "character___20240315_103000_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Filename(tt.typeCode, tt.student, tt.purpose)
			assert.True(t, strings.HasPrefix(got, tt.wantPrefix), "got %q", got)
			assert.True(t, strings.HasSuffix(got, Extension))
			// prefix + 8 random chars + extension
			assert.Len(t, got, len(tt.wantPrefix)+8+len(Extension))
		})
	}
}

func TestFilename_ConcurrentUniqueness(t *testing.T) {
	g := NewWithClock(fixedClock())

	const n = 100
	names := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			names <- g.Filename("bonafide", "John Smith", "Internship application")
		}()
	}
	wg.Wait()
	close(names)

	seen := make(map[string]bool, n)
	for name := range names {
		assert.False(t, seen[name], "duplicate filename %q", name)
		seen[name] = true
	}
	assert.Len(t, seen, n)
}

func TestRenderBody(t *testing.T) {
	student := sampleStudent()

	t.Run("substitutes all known placeholders", func(t *testing.T) {
		body, err := renderBody(
			"Certify {student_name} ({roll_number}) of {course}, {department}, since {admission_date}, for {purpose}.",
			student,
		)
		require.NoError(t, err)
		assert.Equal(t,
			"Certify Mr./Ms. John Smith (CS2024001) of Bachelor of Science (B.Sc.), Computer Science, since 2023-08-15, for Internship application.",
			body,
		)
	})

	t.Run("unknown placeholder fails", func(t *testing.T) {
		_, err := renderBody("Dear {student_name}, your {shoe_size} is noted.", student)

		var rErr *RenderError
		require.ErrorAs(t, err, &rErr)
		assert.Equal(t, "shoe_size", rErr.Placeholder)
		assert.Contains(t, rErr.Error(), "{shoe_size}")
	})

	t.Run("non-placeholder braces pass through", func(t *testing.T) {
		body, err := renderBody("Literal {NOT_A_FIELD} and {123} stay put for {student_name}.", student)
		require.NoError(t, err)
		assert.Contains(t, body, "{NOT_A_FIELD}")
		assert.Contains(t, body, "{123}")
		assert.Contains(t, body, "Mr./Ms. John Smith")
	})
}

func TestCompose(t *testing.T) {
	g := NewWithClock(fixedClock())

	profile, err := registry.LookupUniversity("harvard")
	require.NoError(t, err)
	tpl, err := registry.LookupTemplate("bonafide")
	require.NoError(t, err)

	doc, err := g.Compose(profile, tpl, sampleStudent())
	require.NoError(t, err)

	text := doc.PlainText()

	assert.Contains(t, text, "[Harvard University LOGO]")
	assert.Contains(t, text, "HARVARD UNIVERSITY")
	assert.Contains(t, text, "Office of the Registrar")
	assert.Contains(t, text, "Cambridge, MA 02138")
	assert.Contains(t, text, "Tel: (617) 495-1000")
	assert.Contains(t, text, "BONAFIDE CERTIFICATE")
	assert.Contains(t, text, "Mr./Ms. John Smith")
	assert.Contains(t, text, "Roll No: CS2024001")
	assert.Contains(t, text, "Internship application")
	assert.Contains(t, text, "Date: March 15, 2024")
	assert.Contains(t, text, "Place: Harvard University")
	assert.Contains(t, text, "Registrar")
}

func TestCompose_RenderErrorPropagates(t *testing.T) {
	g := NewWithClock(fixedClock())

	profile, err := registry.LookupUniversity("generic")
	require.NoError(t, err)
	tpl := model.DocumentTemplate{
		TypeCode: "custom",
		Title:    "CUSTOM",
		Body:     "Needs {unknown_field}.",
	}

	_, err = g.Compose(profile, tpl, sampleStudent())

	var rErr *RenderError
	assert.ErrorAs(t, err, &rErr)
	assert.Equal(t, "unknown_field", rErr.Placeholder)
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bonafide", "Bonafide"},
		{"fee_structure", "Fee_Structure"},
		{"noc", "Noc"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, typeLabel(tt.in))
	}
}
