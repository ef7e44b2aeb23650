package shared

// AuditMetadata records which admin created or last changed a record.
type AuditMetadata struct {
	CreatedBy     string `json:"created_by,omitempty"`
	LastUpdatedBy string `json:"last_updated_by,omitempty"`
}

// CreatedBy returns metadata stamped with the creating admin's email.
func CreatedBy(email string) AuditMetadata {
	return AuditMetadata{CreatedBy: email}
}

// IsZero reports whether no audit information has been recorded.
func (m AuditMetadata) IsZero() bool {
	return m.CreatedBy == "" && m.LastUpdatedBy == ""
}
