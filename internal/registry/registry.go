package registry

import (
	"errors"
	"sort"
	"strings"

	"unidocs/internal/model"
)

// Package registry holds the fixed reference data: university profiles and
// document templates. The tables are populated once at package init and never
// mutated; lookups return copies so callers cannot alias the tables.

var (
	ErrUnknownUniversity = errors.New("unknown university code")
	ErrUnknownTemplate   = errors.New("unknown document type")
)

// LookupUniversity returns the profile for the given code.
func LookupUniversity(code string) (model.UniversityProfile, error) {
	p, ok := universities[code]
	if !ok {
		return model.UniversityProfile{}, ErrUnknownUniversity
	}
	return p, nil
}

// LookupTemplate returns the template for the given document type code.
func LookupTemplate(typeCode string) (model.DocumentTemplate, error) {
	t, ok := templates[typeCode]
	if !ok {
		return model.DocumentTemplate{}, ErrUnknownTemplate
	}
	return t, nil
}

// Universities returns all profiles sorted by code.
func Universities() []model.UniversityProfile {
	out := make([]model.UniversityProfile, 0, len(universities))
	for _, p := range universities {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// TemplateTypes returns the advertised document types sorted by value.
func TemplateTypes() []model.DocumentTypeInfo {
	out := make([]model.DocumentTypeInfo, 0, len(templates))
	for _, t := range templates {
		out = append(out, model.DocumentTypeInfo{
			Value:       t.TypeCode,
			Label:       titleCase(t.Title),
			Description: "Generate " + strings.ToLower(t.Title) + " for students",
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// titleCase converts an all-caps title like "BONAFIDE CERTIFICATE" into
// "Bonafide Certificate" for display labels.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
