package routes

import (
	"net/http"

	"github.com/budgify/backend/internal/setup/adapters"
	"github.com/budgify/backend/internal/setup/factory"
	"github.com/budgify/backend/internal/setup/middlewares"
	"github.com/budgify/backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

func RecurringCostRoutes(server *http.ServeMux, db *mongo.Database, accessToken *utils.AccessTokenUtil) {
	server.Handle("POST /recurring", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateRecurringCostController(db)),
		accessToken,
	))

	server.Handle("GET /recurring", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecurringCostsController(db)),
		accessToken,
	))

	server.Handle("GET /recurring/{recurringId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecurringCostByIdController(db)),
		accessToken,
	))

	server.Handle("PUT /recurring/{recurringId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateRecurringCostController(db)),
		accessToken,
	))

	server.Handle("DELETE /recurring/{recurringId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteRecurringCostController(db)),
		accessToken,
	))
}
