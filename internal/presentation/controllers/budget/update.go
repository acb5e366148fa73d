package budget

import (
	"encoding/json"
	"net/http"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
	"github.com/budgify/backend/internal/utils"
	"github.com/go-playground/validator/v10"
)

type UpdateBudgetController struct {
	UpsertBudgetSettingRepository usecase.UpsertBudgetSettingRepository
	Validate                      *validator.Validate
}

func NewUpdateBudgetController(upsertBudgetSetting usecase.UpsertBudgetSettingRepository) *UpdateBudgetController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateBudgetController{
		UpsertBudgetSettingRepository: upsertBudgetSetting,
		Validate:                      validate,
	}
}

type UpdateBudgetBody struct {
	MonthlyLimit float64 `json:"monthly_limit" validate:"gte=0"`
}

func (c *UpdateBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateBudgetBody
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

	setting, err := c.UpsertBudgetSettingRepository.Upsert(&models.BudgetSetting{
		UserId:        userId,
		MonthlyBudget: body.MonthlyLimit,
		UpdatedAt:     utils.CurrentTimestamp(),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error saving budget settings",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&BudgetResponse{
		UserId:       setting.UserId,
		MonthlyLimit: setting.MonthlyBudget,
		UpdatedAt:    setting.UpdatedAt,
	}, http.StatusOK)
}
