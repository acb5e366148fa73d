package budget_repository

import (
	"context"
	"errors"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBudgetSettingByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindBudgetSettingByUserIdRepository(db *mongo.Database) *FindBudgetSettingByUserIdRepository {
	return &FindBudgetSettingByUserIdRepository{
		Db: db,
	}
}

// Find returns nil without error when the user has no budget configured.
func (r *FindBudgetSettingByUserIdRepository) Find(userId int64) (*models.BudgetSetting, error) {
	collection := r.Db.Collection("budget_settings")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var setting models.BudgetSetting
	err := collection.FindOne(ctx, bson.M{"_id": userId}).Decode(&setting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &setting, nil
}
