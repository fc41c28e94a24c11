package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Extension is the artifact file extension including the dot.
const Extension = ".docx"

const purposeMaxLen = 20

var sanitizer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_")

// Filename derives the unique artifact name:
//
//	<typeCode>_<name>_<purpose>_<YYYYMMDD_HHMMSS>_<8-char-id>.docx
//
// Name and purpose have whitespace and path separators replaced with
// underscores; purpose is truncated to 20 characters after sanitization.
// The timestamp plus random suffix make concurrent collisions negligible.
// Empty inputs still yield a valid filename.
func (g *Generator) Filename(typeCode, studentName, purpose string) string {
	cleanName := sanitizer.Replace(studentName)
	cleanPurpose := sanitizer.Replace(purpose)
	if r := []rune(cleanPurpose); len(r) > purposeMaxLen {
		cleanPurpose = string(r[:purposeMaxLen])
	}
	stamp := g.now().Format("20060102_150405")
	id := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s_%s_%s_%s%s", typeCode, cleanName, cleanPurpose, stamp, id, Extension)
}
