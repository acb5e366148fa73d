package recurring

import (
	"net/http"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type GetRecurringCostsController struct {
	FindRecurringCostsByUserIdRepository usecase.FindRecurringCostsByUserIdRepository
}

func NewGetRecurringCostsController(findRecurringCosts usecase.FindRecurringCostsByUserIdRepository) *GetRecurringCostsController {
	return &GetRecurringCostsController{
		FindRecurringCostsByUserIdRepository: findRecurringCosts,
	}
}

func (c *GetRecurringCostsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	recurringCosts, err := c.FindRecurringCostsByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding recurring costs",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(recurringCosts, http.StatusOK)
}
