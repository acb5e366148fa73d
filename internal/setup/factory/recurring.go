package factory

import (
	"github.com/budgify/backend/internal/infra/db/mongodb/recurring_cost_repository"
	"github.com/budgify/backend/internal/presentation/controllers/recurring"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateRecurringCostController(db *mongo.Database) *recurring.CreateRecurringCostController {
	createRecurringCostRepository := recurring_cost_repository.NewCreateRecurringCostRepository(db)
	return recurring.NewCreateRecurringCostController(createRecurringCostRepository)
}

func MakeGetRecurringCostsController(db *mongo.Database) *recurring.GetRecurringCostsController {
	findRecurringCostsRepository := recurring_cost_repository.NewFindRecurringCostsByUserIdRepository(db)
	return recurring.NewGetRecurringCostsController(findRecurringCostsRepository)
}

func MakeGetRecurringCostByIdController(db *mongo.Database) *recurring.GetRecurringCostByIdController {
	findRecurringCostByIdRepository := recurring_cost_repository.NewFindRecurringCostByIdRepository(db)
	return recurring.NewGetRecurringCostByIdController(findRecurringCostByIdRepository)
}

func MakeUpdateRecurringCostController(db *mongo.Database) *recurring.UpdateRecurringCostController {
	updateRecurringCostRepository := recurring_cost_repository.NewUpdateRecurringCostRepository(db)
	findRecurringCostByIdRepository := recurring_cost_repository.NewFindRecurringCostByIdRepository(db)
	return recurring.NewUpdateRecurringCostController(updateRecurringCostRepository, findRecurringCostByIdRepository)
}

func MakeDeleteRecurringCostController(db *mongo.Database) *recurring.DeleteRecurringCostController {
	deleteRecurringCostRepository := recurring_cost_repository.NewDeleteRecurringCostRepository(db)
	findRecurringCostByIdRepository := recurring_cost_repository.NewFindRecurringCostByIdRepository(db)
	return recurring.NewDeleteRecurringCostController(deleteRecurringCostRepository, findRecurringCostByIdRepository)
}
