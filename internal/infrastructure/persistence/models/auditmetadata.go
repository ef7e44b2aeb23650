package models

import "gorm.io/datatypes"

// AuditMetadataJSON is the metadata column shared by admin-managed tables.
type AuditMetadataJSON = datatypes.JSONType[AuditMetadata]

type AuditMetadata struct {
	CreatedBy     *EmailRef `json:"created_by,omitempty"`
	LastUpdatedBy *EmailRef `json:"last_updated_by,omitempty"`
}

// EmailRef keeps the {"email": ...} shape used in stored metadata.
type EmailRef struct {
	Email string `json:"email"`
}
