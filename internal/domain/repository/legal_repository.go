package repository

import (
	"context"

	"adminconsole/internal/domain/entity"
)

type LegalRepository interface {
	// GetAll returns the documents the server knows about, keyed by type.
	GetAll(ctx context.Context) (map[entity.DocumentType]entity.LegalDocument, error)
	GetByType(ctx context.Context, docType entity.DocumentType) (*entity.LegalDocument, error)
	Update(ctx context.Context, docType entity.DocumentType, content string) (*entity.LegalDocument, error)
	Create(ctx context.Context, docType entity.DocumentType, content string) (*entity.LegalDocument, error)
}
