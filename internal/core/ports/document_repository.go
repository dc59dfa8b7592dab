package ports

import (
	"context"

	"github.com/docuvault/docstore/internal/core/domain"
)

// DocumentRepository defines persistence for documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Document, error)
	Update(ctx context.Context, id string, upd domain.DocumentUpdate) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	FindAll(ctx context.Context) ([]domain.Document, error)
}
