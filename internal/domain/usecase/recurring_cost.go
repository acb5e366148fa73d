package usecase

import (
	"github.com/budgify/backend/internal/domain/models"
)

type CreateRecurringCostRepository interface {
	Create(recurringCost *models.RecurringCost) (*models.RecurringCost, error)
}

type FindRecurringCostsByUserIdRepository interface {
	Find(userId int64) ([]models.RecurringCost, error)
}

type FindRecurringCostByIdRepository interface {
	Find(userId int64, recurringCostId int64) (*models.RecurringCost, error)
}

type UpdateRecurringCostRepository interface {
	Update(userId int64, recurringCostId int64, patch *models.RecurringCostPatch) (*models.RecurringCost, error)
}

type DeleteRecurringCostRepository interface {
	Delete(userId int64, recurringCostId int64) error
}
