package budget

import (
	"net/http"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type GetBudgetController struct {
	FindBudgetSettingByUserIdRepository usecase.FindBudgetSettingByUserIdRepository
}

func NewGetBudgetController(findBudgetSetting usecase.FindBudgetSettingByUserIdRepository) *GetBudgetController {
	return &GetBudgetController{
		FindBudgetSettingByUserIdRepository: findBudgetSetting,
	}
}

// BudgetResponse speaks "monthly_limit" to clients while the store keeps
// "monthly_budget"; the split predates this service and clients depend
// on it.
type BudgetResponse struct {
	UserId       int64   `json:"user_id"`
	MonthlyLimit float64 `json:"monthly_limit"`
	UpdatedAt    string  `json:"updated_at"`
}

func (c *GetBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	setting, err := c.FindBudgetSettingByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding budget settings",
		}, http.StatusInternalServerError)
	}
	if setting == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Budget settings not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(&BudgetResponse{
		UserId:       setting.UserId,
		MonthlyLimit: setting.MonthlyBudget,
		UpdatedAt:    setting.UpdatedAt,
	}, http.StatusOK)
}
