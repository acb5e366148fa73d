package routes

import (
	"net/http"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/setup/adapters"
	"github.com/budgify/backend/internal/setup/factory"
	"github.com/budgify/backend/internal/setup/middlewares"
	"github.com/budgify/backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

func ExpenseRoutes(server *http.ServeMux, db *mongo.Database, accessToken *utils.AccessTokenUtil, exportCache usecase.ExpenseExportCacheRepository) {
	server.Handle("POST /expenses", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateExpenseController(db)),
		accessToken,
	))

	server.Handle("GET /expenses", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetExpensesController(db)),
		accessToken,
	))

	// Registered before the {expenseId} pattern so "export" never matches
	// as an id.
	server.Handle("GET /expenses/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportExpensesController(db, exportCache)),
		accessToken,
	))

	server.Handle("GET /expenses/{expenseId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetExpenseByIdController(db)),
		accessToken,
	))

	server.Handle("PUT /expenses/{expenseId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateExpenseController(db)),
		accessToken,
	))

	server.Handle("DELETE /expenses/{expenseId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteExpenseController(db)),
		accessToken,
	))
}
