package expense

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/domain/summary"
	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type UpdateExpenseController struct {
	UpdateExpenseRepository   usecase.UpdateExpenseRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewUpdateExpenseController(
	updateExpense usecase.UpdateExpenseRepository,
	findExpenseById usecase.FindExpenseByIdRepository,
) *UpdateExpenseController {
	return &UpdateExpenseController{
		UpdateExpenseRepository:   updateExpense,
		FindExpenseByIdRepository: findExpenseById,
	}
}

type UpdateExpenseBody struct {
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

func (c *UpdateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateExpenseBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	expenseId, err := strconv.ParseInt(r.Req.PathValue("expenseId"), 10, 64)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expense id",
		}, http.StatusBadRequest)
	}

	patch := &models.ExpensePatch{
		Amount:      body.Amount,
		Category:    body.Category,
		Description: body.Description,
		Date:        body.Date,
	}
	if patch.IsEmpty() {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "No updates provided",
		}, http.StatusBadRequest)
	}

	if patch.Date != nil {
		if _, err := summary.ParseExpenseDate(*patch.Date); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "date must be an ISO-8601 calendar date",
			}, http.StatusBadRequest)
		}
	}

	existing, err := c.FindExpenseByIdRepository.Find(userId, expenseId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expense",
		}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Expense not found",
		}, http.StatusNotFound)
	}

	updated, err := c.UpdateExpenseRepository.Update(userId, expenseId, patch)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error updating expense",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
