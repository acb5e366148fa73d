package recurring

import (
	"net/http"
	"strconv"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type DeleteRecurringCostController struct {
	DeleteRecurringCostRepository   usecase.DeleteRecurringCostRepository
	FindRecurringCostByIdRepository usecase.FindRecurringCostByIdRepository
}

func NewDeleteRecurringCostController(
	deleteRecurringCost usecase.DeleteRecurringCostRepository,
	findRecurringCostById usecase.FindRecurringCostByIdRepository,
) *DeleteRecurringCostController {
	return &DeleteRecurringCostController{
		DeleteRecurringCostRepository:   deleteRecurringCost,
		FindRecurringCostByIdRepository: findRecurringCostById,
	}
}

type DeleteRecurringCostResponse struct {
	Message string `json:"message"`
}

func (c *DeleteRecurringCostController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	existing, err := c.FindRecurringCostByIdRepository.Find(userId, recurringCostId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding recurring cost",
		}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Recurring cost not found",
		}, http.StatusNotFound)
	}

	if err := c.DeleteRecurringCostRepository.Delete(userId, recurringCostId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error deleting recurring cost",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&DeleteRecurringCostResponse{
		Message: "Recurring cost deleted successfully",
	}, http.StatusOK)
}
