package factory

import (
	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/infra/db/mongodb/expense_repository"
	"github.com/budgify/backend/internal/presentation/controllers/expense"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateExpenseController(db *mongo.Database) *expense.CreateExpenseController {
	createExpenseRepository := expense_repository.NewCreateExpenseRepository(db)
	return expense.NewCreateExpenseController(createExpenseRepository)
}

func MakeGetExpensesController(db *mongo.Database) *expense.GetExpensesController {
	findExpensesRepository := expense_repository.NewFindExpensesByUserIdRepository(db)
	return expense.NewGetExpensesController(findExpensesRepository)
}

func MakeGetExpenseByIdController(db *mongo.Database) *expense.GetExpenseByIdController {
	findExpenseByIdRepository := expense_repository.NewFindExpenseByIdRepository(db)
	return expense.NewGetExpenseByIdController(findExpenseByIdRepository)
}

func MakeUpdateExpenseController(db *mongo.Database) *expense.UpdateExpenseController {
	updateExpenseRepository := expense_repository.NewUpdateExpenseRepository(db)
	findExpenseByIdRepository := expense_repository.NewFindExpenseByIdRepository(db)
	return expense.NewUpdateExpenseController(updateExpenseRepository, findExpenseByIdRepository)
}

func MakeDeleteExpenseController(db *mongo.Database) *expense.DeleteExpenseController {
	deleteExpenseRepository := expense_repository.NewDeleteExpenseRepository(db)
	findExpenseByIdRepository := expense_repository.NewFindExpenseByIdRepository(db)
	return expense.NewDeleteExpenseController(deleteExpenseRepository, findExpenseByIdRepository)
}

func MakeExportExpensesController(db *mongo.Database, exportCache usecase.ExpenseExportCacheRepository) *expense.ExportExpensesController {
	findExpensesRepository := expense_repository.NewFindExpensesByUserIdRepository(db)
	return expense.NewExportExpensesController(findExpensesRepository, exportCache)
}
