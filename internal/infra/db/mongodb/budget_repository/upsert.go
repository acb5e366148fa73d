package budget_repository

import (
	"context"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpsertBudgetSettingRepository struct {
	Db *mongo.Database
}

func NewUpsertBudgetSettingRepository(db *mongo.Database) *UpsertBudgetSettingRepository {
	return &UpsertBudgetSettingRepository{
		Db: db,
	}
}

// Upsert replaces the user's budget setting wholesale, creating it on the
// first write.
func (r *UpsertBudgetSettingRepository) Upsert(setting *models.BudgetSetting) (*models.BudgetSetting, error) {
	collection := r.Db.Collection("budget_settings")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.ReplaceOne(
		ctx,
		bson.M{"_id": setting.UserId},
		setting,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	return setting, nil
}
