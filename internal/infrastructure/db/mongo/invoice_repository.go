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

const invoicesCollection = "invoices"

type InvoiceRepository struct {
	col *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{col: db.Collection(invoicesCollection)}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *inv
	if clone.ID == "" {
		clone.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return &clone, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inv domain.Invoice
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, ownerFilter(ownerID), options.Find().SetSort(bson.D{{Key: "due_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer cur.Close(ctx)

	var invoices []domain.Invoice
	if err := cur.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("decode invoices: %w", err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *domain.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": inv.ID}, inv)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// SumByStatus groups invoice amounts by status within the owner scope.
func (r *InvoiceRepository) SumByStatus(ctx context.Context, ownerID string) (map[domain.InvoiceStatus]float64, error) {
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
		return nil, fmt.Errorf("aggregate invoices: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status domain.InvoiceStatus `bson:"_id"`
		Total  float64              `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode invoice aggregate: %w", err)
	}

	sums := make(map[domain.InvoiceStatus]float64, len(rows))
	for _, row := range rows {
		sums[row.Status] = row.Total
	}
	return sums, nil
}
