package expense_repository

import (
	"context"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateExpenseRepository struct {
	Db *mongo.Database
}

func NewUpdateExpenseRepository(db *mongo.Database) *UpdateExpenseRepository {
	return &UpdateExpenseRepository{
		Db: db,
	}
}

// Update merges the non-nil patch fields into the stored record and
// returns the record as it is after the write.
func (u *UpdateExpenseRepository) Update(userId int64, expenseId int64, patch *models.ExpensePatch) (*models.Expense, error) {
	collection := u.Db.Collection("expenses")

	set := bson.M{}
	if patch.Amount != nil {
		set["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": expenseId, "user_id": userId},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var updated models.Expense
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
