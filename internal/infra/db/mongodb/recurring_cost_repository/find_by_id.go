package recurring_cost_repository

import (
	"context"
	"errors"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindRecurringCostByIdRepository struct {
	Db *mongo.Database
}

func NewFindRecurringCostByIdRepository(db *mongo.Database) *FindRecurringCostByIdRepository {
	return &FindRecurringCostByIdRepository{
		Db: db,
	}
}

func (r *FindRecurringCostByIdRepository) Find(userId int64, recurringCostId int64) (*models.RecurringCost, error) {
	collection := r.Db.Collection("recurring_costs")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var recurringCost models.RecurringCost
	err := collection.FindOne(ctx, bson.M{"_id": recurringCostId, "user_id": userId}).Decode(&recurringCost)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &recurringCost, nil
}
