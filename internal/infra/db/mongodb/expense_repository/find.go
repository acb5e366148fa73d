package expense_repository

import (
	"context"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindExpensesByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindExpensesByUserIdRepository(db *mongo.Database) *FindExpensesByUserIdRepository {
	return &FindExpensesByUserIdRepository{
		Db: db,
	}
}

// Find returns every expense of the user, sorted newest date first. Date
// filtering is deliberately left to the caller.
func (r *FindExpensesByUserIdRepository) Find(userId int64) ([]models.Expense, error) {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, err
	}

	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}
