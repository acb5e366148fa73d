package expense_repository

import (
	"context"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"github.com/budgify/backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseRepository struct {
	Db *mongo.Database
}

func NewCreateExpenseRepository(db *mongo.Database) *CreateExpenseRepository {
	return &CreateExpenseRepository{
		Db: db,
	}
}

func (r *CreateExpenseRepository) Create(expense *models.Expense) (*models.Expense, error) {
	collection := r.Db.Collection("expenses")

	expense.Id = utils.GenerateId()
	expense.CreatedAt = utils.CurrentTimestamp()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, expense)
	if err != nil {
		return nil, err
	}

	return expense, nil
}
