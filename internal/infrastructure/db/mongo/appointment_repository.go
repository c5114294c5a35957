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

const appointmentsCollection = "appointments"

type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(appointmentsCollection)}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *a
	if clone.ID == "" {
		clone.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, &clone); err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return &clone, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Appointment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &a, nil
}

func (r *AppointmentRepository) List(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, ownerFilter(ownerID), options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	var appts []domain.Appointment
	if err := cur.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}
