package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/docuvault/docstore/internal/core/domain"
)

const collectionDocuments = "documents"

// DocumentRepository persists documents in the documents collection.
type DocumentRepository struct {
	col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{col: db.Collection(collectionDocuments)}
}

type mongoDocument struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	OwnerID      *primitive.ObjectID `bson:"owner_id,omitempty"`
	Title        string              `bson:"title"`
	Content      string              `bson:"content"`
	DateCreated  time.Time           `bson:"date_created"`
	LastModified time.Time           `bson:"last_modified"`
}

func (md mongoDocument) toDomain() *domain.Document {
	doc := &domain.Document{
		ID:           md.ID.Hex(),
		Title:        md.Title,
		Content:      md.Content,
		DateCreated:  md.DateCreated.UTC(),
		LastModified: md.LastModified.UTC(),
	}
	if md.OwnerID != nil {
		doc.OwnerID = md.OwnerID.Hex()
	}
	return doc
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	md := mongoDocument{
		Title:        doc.Title,
		Content:      doc.Content,
		DateCreated:  doc.DateCreated,
		LastModified: doc.LastModified,
	}
	if doc.OwnerID != "" {
		oid, err := parseID(doc.OwnerID)
		if err != nil {
			return "", err
		}
		md.OwnerID = &oid
	}

	res, err := r.col.InsertOne(ctx, md)
	if err != nil {
		return "", storeErr("insert document", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var md mongoDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, storeErr("find document", err)
	}
	return md.toDomain(), nil
}

// Update $set-merges the non-nil fields of upd and returns the match count.
// Neither the identifier nor the owner reference can appear in the merge
// set.
func (r *DocumentRepository) Update(ctx context.Context, id string, upd domain.DocumentUpdate) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	set := documentSetDoc(upd)
	if len(set) == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			if errors.Is(err, domain.ErrDocumentNotFound) {
				return 0, nil
			}
			return 0, err
		}
		return 1, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, storeErr("update document", err)
	}
	return res.MatchedCount, nil
}

func documentSetDoc(upd domain.DocumentUpdate) bson.M {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.LastModified != nil {
		set["last_modified"] = *upd.LastModified
	}
	return set
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, storeErr("delete document", err)
	}
	return res.DeletedCount, nil
}

func (r *DocumentRepository) FindAll(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr("list documents", err)
	}
	defer cur.Close(ctx)

	var raw []mongoDocument
	if err := cur.All(ctx, &raw); err != nil {
		return nil, storeErr("decode documents", err)
	}

	docs := make([]domain.Document, 0, len(raw))
	for _, md := range raw {
		docs = append(docs, *md.toDomain())
	}
	return docs, nil
}

// EnsureIndexes creates the owner lookup index on the documents collection.
func (r *DocumentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
