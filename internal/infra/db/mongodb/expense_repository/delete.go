package expense_repository

import (
	"context"

	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteExpenseRepository struct {
	Db *mongo.Database
}

func NewDeleteExpenseRepository(db *mongo.Database) *DeleteExpenseRepository {
	return &DeleteExpenseRepository{
		Db: db,
	}
}

func (r *DeleteExpenseRepository) Delete(userId int64, expenseId int64) error {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": expenseId, "user_id": userId})
	return err
}
