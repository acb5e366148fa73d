package recurring

import (
	"encoding/json"
	"net/http"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateRecurringCostController struct {
	CreateRecurringCostRepository usecase.CreateRecurringCostRepository
	Validate                      *validator.Validate
}

func NewCreateRecurringCostController(createRecurringCost usecase.CreateRecurringCostRepository) *CreateRecurringCostController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateRecurringCostController{
		CreateRecurringCostRepository: createRecurringCost,
		Validate:                      validate,
	}
}

type CreateRecurringCostBody struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Amount    float64 `json:"amount" validate:"required"`
	Category  string  `json:"category" validate:"required,max=255"`
	Frequency string  `json:"frequency" validate:"required,oneof=monthly annual"`
	StartDate string  `json:"start_date" validate:"omitempty"`
}

func (c *CreateRecurringCostController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateRecurringCostBody
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

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	recurringCost, err := c.CreateRecurringCostRepository.Create(&models.RecurringCost{
		UserId:    userId,
		Name:      body.Name,
		Amount:    body.Amount,
		Category:  body.Category,
		Frequency: body.Frequency,
		StartDate: body.StartDate,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating recurring cost",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(recurringCost, http.StatusOK)
}
