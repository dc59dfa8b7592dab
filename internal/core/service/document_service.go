package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/docuvault/docstore/internal/core/domain"
	"github.com/docuvault/docstore/internal/core/ports"
)

// DocumentService orchestrates document CRUD. Ownership is derived from the
// authenticated subject at creation time and never changes afterwards.
type DocumentService struct {
	docs   ports.DocumentRepository
	users  ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewDocumentService(docs ports.DocumentRepository, users ports.UserRepository, logger zerolog.Logger) *DocumentService {
	return &DocumentService{docs: docs, users: users, logger: logger, now: time.Now}
}

// Create stores a new document owned by the account whose email is subject.
// Titles are stored lowercase.
func (s *DocumentService) Create(ctx context.Context, subject string, input ports.CreateDocumentInput) (*domain.Document, error) {
	owner, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	doc := &domain.Document{
		OwnerID:      owner.ID,
		Title:        strings.ToLower(input.Title),
		Content:      input.Content,
		DateCreated:  now,
		LastModified: now,
	}

	id, err := s.docs.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id

	s.logger.Info().Str("document_id", id).Str("owner_id", owner.ID).Msg("document created")
	return doc, nil
}

func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.docs.FindByID(ctx, id)
}

func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docs.FindAll(ctx)
}

// Update merges title/content changes and stamps last_modified. Owner and
// identifier are untouched regardless of what the client sent.
func (s *DocumentService) Update(ctx context.Context, id string, input ports.DocumentUpdateInput) (*domain.Document, error) {
	upd := domain.DocumentUpdate{Content: input.Content}
	if input.Title != nil {
		title := strings.ToLower(*input.Title)
		upd.Title = &title
	}
	modified := s.now().UTC()
	upd.LastModified = &modified

	matched, err := s.docs.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrDocumentNotFound
	}

	s.logger.Info().Str("document_id", id).Msg("document updated")
	return s.docs.FindByID(ctx, id)
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.docs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrDocumentNotFound
	}

	s.logger.Info().Str("document_id", id).Msg("document deleted")
	return nil
}
