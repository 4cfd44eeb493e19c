package model

import "strings"

// CandidateRecord is one unvalidated prospective user. It exists only for the
// duration of a single ingestion call and is never persisted directly.
type CandidateRecord struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,max=50"`
}

// Normalize trims surrounding whitespace and lower-cases the role. Email
// normalization for duplicate detection happens in the resolver.
func (r *CandidateRecord) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

// Check validates the candidate and returns every violation rather than
// stopping at the first, so a caller fixing a bulk upload sees the full
// picture at once. A nil result means the record is valid.
func (r *CandidateRecord) Check() []string {
	r.Normalize()

	var reasons []string
	if err := GetValidator().Struct(r); err != nil {
		reasons = FormatValidationReasons(err)
	}
	if r.Role != "" && !AllowedRoles[r.Role] {
		reasons = append(reasons, "role must be one of [member, admin, moderator]")
	}
	return reasons
}
