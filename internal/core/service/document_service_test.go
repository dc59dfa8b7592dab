package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/docuvault/docstore/internal/core/domain"
	"github.com/docuvault/docstore/internal/core/ports"
)

type stubDocRepo struct {
	docs map[string]*domain.Document
	seq  int
}

func newStubDocRepo() *stubDocRepo {
	return &stubDocRepo{docs: make(map[string]*domain.Document)}
}

func cloneDoc(d *domain.Document) *domain.Document {
	clone := *d
	return &clone
}

func (r *stubDocRepo) Create(_ context.Context, doc *domain.Document) (string, error) {
	r.seq++
	id := fmt.Sprintf("%024x", 0x1000+r.seq)
	stored := cloneDoc(doc)
	stored.ID = id
	r.docs[id] = stored
	return id, nil
}

func (r *stubDocRepo) FindByID(_ context.Context, id string) (*domain.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return cloneDoc(d), nil
}

func (r *stubDocRepo) Update(_ context.Context, id string, upd domain.DocumentUpdate) (int64, error) {
	d, ok := r.docs[id]
	if !ok {
		return 0, nil
	}
	if upd.Title != nil {
		d.Title = *upd.Title
	}
	if upd.Content != nil {
		d.Content = *upd.Content
	}
	if upd.LastModified != nil {
		d.LastModified = *upd.LastModified
	}
	return 1, nil
}

func (r *stubDocRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := r.docs[id]; !ok {
		return 0, nil
	}
	delete(r.docs, id)
	return 1, nil
}

func (r *stubDocRepo) FindAll(_ context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, *d)
	}
	return out, nil
}

func TestDocumentService_Create_OwnerFromSubject(t *testing.T) {
	users := newStubUserRepo()
	docs := newStubDocRepo()
	svc := NewDocumentService(docs, users, zerolog.Nop())

	ownerID := seedUser(t, users, "alice", "alice@example.com")

	doc, err := svc.Create(context.Background(), "alice@example.com", ports.CreateDocumentInput{
		Title:   "Quarterly Report",
		Content: "numbers",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if doc.OwnerID != ownerID {
		t.Fatalf("expected owner %q, got %q", ownerID, doc.OwnerID)
	}
	if doc.Title != "quarterly report" {
		t.Fatalf("expected lowercased title, got %q", doc.Title)
	}
	if doc.DateCreated.IsZero() || !doc.DateCreated.Equal(doc.LastModified) {
		t.Fatalf("expected matching creation timestamps, got %v / %v", doc.DateCreated, doc.LastModified)
	}
}

func TestDocumentService_Create_UnknownSubject(t *testing.T) {
	svc := NewDocumentService(newStubDocRepo(), newStubUserRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), "ghost@example.com", ports.CreateDocumentInput{
		Title: "x", Content: "y",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDocumentService_Update_OwnerUnchanged(t *testing.T) {
	users := newStubUserRepo()
	docs := newStubDocRepo()
	svc := NewDocumentService(docs, users, zerolog.Nop())

	ownerID := seedUser(t, users, "alice", "alice@example.com")
	created, err := svc.Create(context.Background(), "alice@example.com", ports.CreateDocumentInput{
		Title: "Notes", Content: "draft",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.DocumentUpdateInput{
		Title: strPtr("Final Notes"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Title != "final notes" {
		t.Fatalf("title not merged: %q", updated.Title)
	}
	if updated.Content != "draft" {
		t.Fatalf("content should be untouched, got %q", updated.Content)
	}
	if updated.OwnerID != ownerID {
		t.Fatalf("owner changed from %q to %q", ownerID, updated.OwnerID)
	}
	if updated.ID != created.ID {
		t.Fatalf("identifier changed from %q to %q", created.ID, updated.ID)
	}
}

func TestDocumentService_Update_StampsLastModified(t *testing.T) {
	users := newStubUserRepo()
	docs := newStubDocRepo()
	svc := NewDocumentService(docs, users, zerolog.Nop())
	seedUser(t, users, "alice", "alice@example.com")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	created, err := svc.Create(context.Background(), "alice@example.com", ports.CreateDocumentInput{
		Title: "t", Content: "c",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc.now = func() time.Time { return base.Add(time.Hour) }
	updated, err := svc.Update(context.Background(), created.ID, ports.DocumentUpdateInput{
		Content: strPtr("c2"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if !updated.DateCreated.Equal(base) {
		t.Fatalf("date_created moved: %v", updated.DateCreated)
	}
	if !updated.LastModified.Equal(base.Add(time.Hour)) {
		t.Fatalf("last_modified not stamped: %v", updated.LastModified)
	}
}

func TestDocumentService_Update_NotFound(t *testing.T) {
	svc := NewDocumentService(newStubDocRepo(), newStubUserRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "0000000000000000000000aa", ports.DocumentUpdateInput{
		Title: strPtr("x"),
	})
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDocumentService_DeleteThenGet(t *testing.T) {
	users := newStubUserRepo()
	docs := newStubDocRepo()
	svc := NewDocumentService(docs, users, zerolog.Nop())
	seedUser(t, users, "alice", "alice@example.com")

	created, err := svc.Create(context.Background(), "alice@example.com", ports.CreateDocumentInput{
		Title: "t", Content: "c",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound after delete, got %v", err)
	}
}
