package ports

import (
	"context"

	"github.com/docuvault/docstore/internal/core/domain"
)

type CreateDocumentInput struct {
	Title   string
	Content string
}

// DocumentUpdateInput is a partial document update as received from a
// client. Owner and identifier are not representable here on purpose.
type DocumentUpdateInput struct {
	Title   *string
	Content *string
}

type DocumentService interface {
	// Create stores a new document owned by the account whose email is
	// subject (the authenticated identity).
	Create(ctx context.Context, subject string, input CreateDocumentInput) (*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	Update(ctx context.Context, id string, input DocumentUpdateInput) (*domain.Document, error)
	Delete(ctx context.Context, id string) error
}
