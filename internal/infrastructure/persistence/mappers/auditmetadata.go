package mappers

import (
	"gorm.io/datatypes"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/shared"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
)

func auditToModel(m shared.AuditMetadata) models.AuditMetadataJSON {
	var out models.AuditMetadata
	if m.CreatedBy != "" {
		out.CreatedBy = &models.EmailRef{Email: m.CreatedBy}
	}
	if m.LastUpdatedBy != "" {
		out.LastUpdatedBy = &models.EmailRef{Email: m.LastUpdatedBy}
	}
	return datatypes.NewJSONType(out)
}

func auditToEntity(j models.AuditMetadataJSON) shared.AuditMetadata {
	m := j.Data()
	var out shared.AuditMetadata
	if m.CreatedBy != nil {
		out.CreatedBy = m.CreatedBy.Email
	}
	if m.LastUpdatedBy != nil {
		out.LastUpdatedBy = m.LastUpdatedBy.Email
	}
	return out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
