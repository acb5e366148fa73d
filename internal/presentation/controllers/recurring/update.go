package recurring

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type UpdateRecurringCostController struct {
	UpdateRecurringCostRepository   usecase.UpdateRecurringCostRepository
	FindRecurringCostByIdRepository usecase.FindRecurringCostByIdRepository
}

func NewUpdateRecurringCostController(
	updateRecurringCost usecase.UpdateRecurringCostRepository,
	findRecurringCostById usecase.FindRecurringCostByIdRepository,
) *UpdateRecurringCostController {
	return &UpdateRecurringCostController{
		UpdateRecurringCostRepository:   updateRecurringCost,
		FindRecurringCostByIdRepository: findRecurringCostById,
	}
}

type UpdateRecurringCostBody struct {
	Name      *string  `json:"name"`
	Amount    *float64 `json:"amount"`
	Category  *string  `json:"category"`
	Frequency *string  `json:"frequency"`
	StartDate *string  `json:"start_date"`
}

func (c *UpdateRecurringCostController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateRecurringCostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

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

	patch := &models.RecurringCostPatch{
		Name:      body.Name,
		Amount:    body.Amount,
		Category:  body.Category,
		Frequency: body.Frequency,
		StartDate: body.StartDate,
	}
	if patch.IsEmpty() {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "No updates provided",
		}, http.StatusBadRequest)
	}

	if patch.Frequency != nil && *patch.Frequency != models.FrequencyMonthly && *patch.Frequency != models.FrequencyAnnual {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "frequency must be monthly or annual",
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

	updated, err := c.UpdateRecurringCostRepository.Update(userId, recurringCostId, patch)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating recurring cost",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
