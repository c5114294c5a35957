package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/obrasys/backoffice/internal/core/domain"
)

const documentsCollection = "documents"

type DocumentRepository struct {
	col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{col: db.Collection(documentsCollection)}
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *d
	if clone.ID == "" {
		clone.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return &clone, nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Document
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return &d, nil
}

func (r *DocumentRepository) List(ctx context.Context, ownerID string) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, ownerFilter(ownerID), options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer cur.Close(ctx)

	var docs []domain.Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	return docs, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
