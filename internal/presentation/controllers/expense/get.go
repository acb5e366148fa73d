package expense

import (
	"net/http"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type GetExpensesController struct {
	FindExpensesByUserIdRepository usecase.FindExpensesByUserIdRepository
}

func NewGetExpensesController(findExpenses usecase.FindExpensesByUserIdRepository) *GetExpensesController {
	return &GetExpensesController{
		FindExpensesByUserIdRepository: findExpenses,
	}
}

func (c *GetExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	expenses, err := c.FindExpensesByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expenses, http.StatusOK)
}
