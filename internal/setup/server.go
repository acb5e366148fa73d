package setup

import (
	"net/http"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"github.com/budgify/backend/internal/infra/db/redis_repository"
	"github.com/budgify/backend/internal/setup/config"
	"github.com/budgify/backend/internal/setup/middlewares"
	"github.com/budgify/backend/internal/setup/routes"
	"github.com/budgify/backend/internal/utils"
	"go.uber.org/zap"
)

// Server wires the stores, controllers and middleware chain into a single
// http.Handler.
func Server(cfg *config.Config, log *zap.Logger) (http.Handler, error) {
	db, err := helpers.MongoHelper(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return nil, err
	}

	// The export cache is optional; without redis the export endpoint
	// simply regenerates the workbook on every request.
	var exportCache usecase.ExpenseExportCacheRepository
	if cfg.Redis.URL != "" {
		client, err := helpers.RedisHelper(cfg.Redis.URL)
		if err != nil {
			log.Warn("redis unavailable, expense export cache disabled", zap.Error(err))
		} else {
			exportCache = redis_repository.NewExportCacheRepository(client)
		}
	}

	accessToken := utils.NewAccessTokenUtil(cfg.JWT.Secret, cfg.JWT.Expiration)

	mux := http.NewServeMux()
	routes.StatusRoutes(mux)
	routes.AuthRoutes(mux, db, accessToken)
	routes.ExpenseRoutes(mux, db, accessToken, exportCache)
	routes.RecurringCostRoutes(mux, db, accessToken)
	routes.BudgetRoutes(mux, db, accessToken)

	handler := middlewares.RequestLogger(mux, log)
	handler = middlewares.RecoveryMiddleware(handler, log)
	handler = middlewares.CorsMiddleware(handler, cfg.CORS.AllowedOrigins)

	return handler, nil
}
