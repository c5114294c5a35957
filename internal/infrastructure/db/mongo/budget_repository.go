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

const budgetsCollection = "budgets"

type BudgetRepository struct {
	col *mongo.Collection
}

func NewBudgetRepository(db *mongo.Database) *BudgetRepository {
	return &BudgetRepository{col: db.Collection(budgetsCollection)}
}

func (r *BudgetRepository) Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *b
	if clone.ID == "" {
		clone.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, fmt.Errorf("insert budget: %w", err)
	}
	return &clone, nil
}

func (r *BudgetRepository) FindByID(ctx context.Context, id string) (*domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Budget
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, fmt.Errorf("find budget: %w", err)
	}
	return &b, nil
}

func (r *BudgetRepository) List(ctx context.Context, ownerID string) ([]domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, ownerFilter(ownerID), options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer cur.Close(ctx)

	var budgets []domain.Budget
	if err := cur.All(ctx, &budgets); err != nil {
		return nil, fmt.Errorf("decode budgets: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepository) Update(ctx context.Context, b *domain.Budget) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

// SumByStatus groups budget amounts by status within the owner scope.
func (r *BudgetRepository) SumByStatus(ctx context.Context, ownerID string) (map[domain.BudgetStatus]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: ownerFilter(ownerID)}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate budgets: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status domain.BudgetStatus `bson:"_id"`
		Total  float64             `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode budget aggregate: %w", err)
	}

	sums := make(map[domain.BudgetStatus]float64, len(rows))
	for _, row := range rows {
		sums[row.Status] = row.Total
	}
	return sums, nil
}
