package model

// UniversityProfile is the static display identity of a university,
// keyed by its code in the reference data.
type UniversityProfile struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Website    string `json:"website"`
	ThemeColor string `json:"theme_color"`
}

// DocumentTemplate pairs a certificate title with a placeholder-bearing body.
// Body placeholders use {name} tokens substituted at render time.
type DocumentTemplate struct {
	TypeCode string `json:"type_code"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// DocumentTypeInfo is the advertised shape of a template for the system-info
// endpoint: value is the type code, label a human-readable name.
type DocumentTypeInfo struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}
