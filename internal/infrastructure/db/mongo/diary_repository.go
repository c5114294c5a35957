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

const diaryCollection = "work_diaries"

type DiaryRepository struct {
	col *mongo.Collection
}

func NewDiaryRepository(db *mongo.Database) *DiaryRepository {
	return &DiaryRepository{col: db.Collection(diaryCollection)}
}

func (r *DiaryRepository) Create(ctx context.Context, e *domain.DiaryEntry) (*domain.DiaryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *e
	if clone.ID == "" {
		clone.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, fmt.Errorf("insert diary entry: %w", err)
	}
	return &clone, nil
}

func (r *DiaryRepository) FindByID(ctx context.Context, id string) (*domain.DiaryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.DiaryEntry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDiaryEntryNotFound
		}
		return nil, fmt.Errorf("find diary entry: %w", err)
	}
	return &e, nil
}

func (r *DiaryRepository) List(ctx context.Context, ownerID string) ([]domain.DiaryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, ownerFilter(ownerID), options.Find().SetSort(bson.D{{Key: "entry_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.DiaryEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode diary entries: %w", err)
	}
	return entries, nil
}

func (r *DiaryRepository) Update(ctx context.Context, e *domain.DiaryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return fmt.Errorf("update diary entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDiaryEntryNotFound
	}
	return nil
}

func (r *DiaryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete diary entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDiaryEntryNotFound
	}
	return nil
}
