package expense

import (
	"encoding/json"
	"net/http"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/domain/summary"
	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateExpenseController struct {
	CreateExpenseRepository usecase.CreateExpenseRepository
	Validate                *validator.Validate
}

func NewCreateExpenseController(createExpense usecase.CreateExpenseRepository) *CreateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateExpenseController{
		CreateExpenseRepository: createExpense,
		Validate:                validate,
	}
}

type CreateExpenseBody struct {
	Amount      float64 `json:"amount" validate:"required"`
	Category    string  `json:"category" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1000"`
	Date        string  `json:"date" validate:"required"`
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateExpenseBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	if _, err := summary.ParseExpenseDate(body.Date); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "date must be an ISO-8601 calendar date",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	expense, err := c.CreateExpenseRepository.Create(&models.Expense{
		UserId:      userId,
		Amount:      body.Amount,
		Category:    body.Category,
		Description: body.Description,
		Date:        body.Date,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating expense",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expense, http.StatusOK)
}
