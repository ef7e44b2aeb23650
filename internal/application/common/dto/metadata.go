// Package dto holds response shapes shared across application contexts.
package dto

import "github.com/bdorababu707/goldvault-investment-module/internal/domain/shared"

// EmailRef keeps the {"email": ...} shape clients already consume.
type EmailRef struct {
	Email string `json:"email"`
}

type MetadataDTO struct {
	CreatedBy     *EmailRef `json:"created_by,omitempty"`
	LastUpdatedBy *EmailRef `json:"last_updated_by,omitempty"`
}

func ToMetadataDTO(m shared.AuditMetadata) *MetadataDTO {
	if m.IsZero() {
		return nil
	}
	out := &MetadataDTO{}
	if m.CreatedBy != "" {
		out.CreatedBy = &EmailRef{Email: m.CreatedBy}
	}
	if m.LastUpdatedBy != "" {
		out.LastUpdatedBy = &EmailRef{Email: m.LastUpdatedBy}
	}
	return out
}
