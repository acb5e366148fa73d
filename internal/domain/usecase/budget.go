package usecase

import (
	"github.com/budgify/backend/internal/domain/models"
)

// FindBudgetSettingByUserIdRepository returns nil without error when the
// user never configured a budget.
type FindBudgetSettingByUserIdRepository interface {
	Find(userId int64) (*models.BudgetSetting, error)
}

type UpsertBudgetSettingRepository interface {
	Upsert(setting *models.BudgetSetting) (*models.BudgetSetting, error)
}
