package recurring

import (
	"net/http"
	"strconv"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type GetRecurringCostByIdController struct {
	FindRecurringCostByIdRepository usecase.FindRecurringCostByIdRepository
}

func NewGetRecurringCostByIdController(findRecurringCostById usecase.FindRecurringCostByIdRepository) *GetRecurringCostByIdController {
	return &GetRecurringCostByIdController{
		FindRecurringCostByIdRepository: findRecurringCostById,
	}
}

func (c *GetRecurringCostByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	recurringCostId, err := strconv.ParseInt(r.Req.PathValue("recurringId"), 10, 64)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid recurring cost id",
		}, http.StatusBadRequest)
	}

	recurringCost, err := c.FindRecurringCostByIdRepository.Find(userId, recurringCostId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding recurring cost",
		}, http.StatusInternalServerError)
	}
	if recurringCost == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Recurring cost not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(recurringCost, http.StatusOK)
}
