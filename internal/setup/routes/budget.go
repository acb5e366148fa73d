package routes

import (
	"net/http"

	"github.com/budgify/backend/internal/setup/adapters"
	"github.com/budgify/backend/internal/setup/factory"
	"github.com/budgify/backend/internal/setup/middlewares"
	"github.com/budgify/backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

func BudgetRoutes(server *http.ServeMux, db *mongo.Database, accessToken *utils.AccessTokenUtil) {
	server.Handle("GET /budget", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetBudgetController(db)),
		accessToken,
	))

	server.Handle("PUT /budget", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateBudgetController(db)),
		accessToken,
	))

	server.Handle("GET /budget/spending/{year}/{month}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetSpendingSummaryController(db)),
		accessToken,
	))
}
