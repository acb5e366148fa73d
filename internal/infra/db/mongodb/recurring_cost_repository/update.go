package recurring_cost_repository

import (
	"context"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateRecurringCostRepository struct {
	Db *mongo.Database
}

func NewUpdateRecurringCostRepository(db *mongo.Database) *UpdateRecurringCostRepository {
	return &UpdateRecurringCostRepository{
		Db: db,
	}
}

func (u *UpdateRecurringCostRepository) Update(userId int64, recurringCostId int64, patch *models.RecurringCostPatch) (*models.RecurringCost, error) {
	collection := u.Db.Collection("recurring_costs")

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Amount != nil {
		set["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Frequency != nil {
		set["frequency"] = *patch.Frequency
	}
	if patch.StartDate != nil {
		set["start_date"] = *patch.StartDate
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": recurringCostId, "user_id": userId},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var updated models.RecurringCost
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
