package status

import (
	"net/http"

	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type RootController struct{}

func NewRootController() *RootController {
	return &RootController{}
}

type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func (c *RootController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(&RootResponse{
		Message: "Budgify API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"health":    "/health",
			"auth":      "/auth",
			"expenses":  "/expenses",
			"recurring": "/recurring",
			"budget":    "/budget",
		},
	}, http.StatusOK)
}

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *HealthController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(&HealthResponse{
		Status:  "ok",
		Message: "Budgify API is running",
	}, http.StatusOK)
}
