package factory

import (
	"github.com/budgify/backend/internal/domain/summary"
	"github.com/budgify/backend/internal/infra/db/mongodb/budget_repository"
	"github.com/budgify/backend/internal/infra/db/mongodb/expense_repository"
	"github.com/budgify/backend/internal/infra/db/mongodb/recurring_cost_repository"
	"github.com/budgify/backend/internal/presentation/controllers/budget"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetBudgetController(db *mongo.Database) *budget.GetBudgetController {
	findBudgetSettingRepository := budget_repository.NewFindBudgetSettingByUserIdRepository(db)
	return budget.NewGetBudgetController(findBudgetSettingRepository)
}

func MakeUpdateBudgetController(db *mongo.Database) *budget.UpdateBudgetController {
	upsertBudgetSettingRepository := budget_repository.NewUpsertBudgetSettingRepository(db)
	return budget.NewUpdateBudgetController(upsertBudgetSettingRepository)
}

func MakeGetSpendingSummaryController(db *mongo.Database) *budget.GetSpendingSummaryController {
	aggregator := summary.NewAggregator(
		expense_repository.NewFindExpensesByUserIdRepository(db),
		recurring_cost_repository.NewFindRecurringCostsByUserIdRepository(db),
		budget_repository.NewFindBudgetSettingByUserIdRepository(db),
	)
	return budget.NewGetSpendingSummaryController(aggregator)
}
