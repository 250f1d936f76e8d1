// Package users implements the user registry domain: record validation,
// persistence, substring search, bulk ingest, and photo management.
package users

// User represents a registry record keyed by identity document.
// The derived fields NameNormalized and NameLower are recomputed whenever
// Name changes; they back accent- and case-insensitive search.
type User struct {
	DocumentID     string  `json:"documento_identidad"`
	Name           string  `json:"nombre"`
	Email          string  `json:"email"`
	BirthDate      Date    `json:"fecha_nacimiento"`
	PhotoURL       *string `json:"foto,omitempty"`
	NameNormalized string  `json:"nombre_normalizado"`
	NameLower      string  `json:"nombre_minusculas"`
}

// CreateCommand carries the data needed to register a new user. BirthDate is
// the raw ISO string from the request; it is validated and parsed before
// persistence.
type CreateCommand struct {
	Name       string  `json:"nombre"`
	Email      string  `json:"email"`
	DocumentID string  `json:"documento_identidad"`
	BirthDate  string  `json:"fecha_nacimiento"`
	PhotoURL   *string `json:"foto,omitempty"`
}

// Patch carries a partial update. Nil fields are left untouched. A non-nil
// DocumentID that differs from the path key renames the record.
type Patch struct {
	DocumentID *string `json:"documento_identidad,omitempty"`
	Name       *string `json:"nombre,omitempty"`
	Email      *string `json:"email,omitempty"`
	BirthDate  *string `json:"fecha_nacimiento,omitempty"`
}

// Empty reports whether the patch carries no fields.
func (p Patch) Empty() bool {
	return p.DocumentID == nil && p.Name == nil && p.Email == nil && p.BirthDate == nil
}
