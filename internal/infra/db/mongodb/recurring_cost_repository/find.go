package recurring_cost_repository

import (
	"context"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindRecurringCostsByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindRecurringCostsByUserIdRepository(db *mongo.Database) *FindRecurringCostsByUserIdRepository {
	return &FindRecurringCostsByUserIdRepository{
		Db: db,
	}
}

func (r *FindRecurringCostsByUserIdRepository) Find(userId int64) ([]models.RecurringCost, error) {
	collection := r.Db.Collection("recurring_costs")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId})
	if err != nil {
		return nil, err
	}

	recurringCosts := []models.RecurringCost{}
	if err := cursor.All(ctx, &recurringCosts); err != nil {
		return nil, err
	}

	return recurringCosts, nil
}
