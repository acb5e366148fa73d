package usecase

import (
	"time"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/xuri/excelize/v2"
)

type CreateExpenseRepository interface {
	Create(expense *models.Expense) (*models.Expense, error)
}

// FindExpensesByUserIdRepository returns every expense of a user, newest
// date first. The store has no date filter on this path; month selection
// is done by the caller.
type FindExpensesByUserIdRepository interface {
	Find(userId int64) ([]models.Expense, error)
}

type FindExpenseByIdRepository interface {
	Find(userId int64, expenseId int64) (*models.Expense, error)
}

type UpdateExpenseRepository interface {
	Update(userId int64, expenseId int64, patch *models.ExpensePatch) (*models.Expense, error)
}

type DeleteExpenseRepository interface {
	Delete(userId int64, expenseId int64) error
}

// ExpenseExportCacheRepository caches generated XLSX exports per user.
type ExpenseExportCacheRepository interface {
	FindExcel(key string) (*excelize.File, error)
	SaveExcel(key string, file *excelize.File, expiration time.Duration) error
}
