package recurring_cost_repository

import (
	"context"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"github.com/budgify/backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateRecurringCostRepository struct {
	Db *mongo.Database
}

func NewCreateRecurringCostRepository(db *mongo.Database) *CreateRecurringCostRepository {
	return &CreateRecurringCostRepository{
		Db: db,
	}
}

func (r *CreateRecurringCostRepository) Create(recurringCost *models.RecurringCost) (*models.RecurringCost, error) {
	collection := r.Db.Collection("recurring_costs")

	recurringCost.Id = utils.GenerateId()
	recurringCost.CreatedAt = utils.CurrentTimestamp()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, recurringCost)
	if err != nil {
		return nil, err
	}

	return recurringCost, nil
}
