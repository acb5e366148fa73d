package expense_repository

import (
	"context"
	"errors"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindExpenseByIdRepository struct {
	Db *mongo.Database
}

func NewFindExpenseByIdRepository(db *mongo.Database) *FindExpenseByIdRepository {
	return &FindExpenseByIdRepository{
		Db: db,
	}
}

func (r *FindExpenseByIdRepository) Find(userId int64, expenseId int64) (*models.Expense, error) {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var expense models.Expense
	err := collection.FindOne(ctx, bson.M{"_id": expenseId, "user_id": userId}).Decode(&expense)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &expense, nil
}
