package recurring_cost_repository

import (
	"context"

	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteRecurringCostRepository struct {
	Db *mongo.Database
}

func NewDeleteRecurringCostRepository(db *mongo.Database) *DeleteRecurringCostRepository {
	return &DeleteRecurringCostRepository{
		Db: db,
	}
}

func (r *DeleteRecurringCostRepository) Delete(userId int64, recurringCostId int64) error {
	collection := r.Db.Collection("recurring_costs")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": recurringCostId, "user_id": userId})
	return err
}
