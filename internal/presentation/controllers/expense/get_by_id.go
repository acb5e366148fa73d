package expense

import (
	"net/http"
	"strconv"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type GetExpenseByIdController struct {
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewGetExpenseByIdController(findExpenseById usecase.FindExpenseByIdRepository) *GetExpenseByIdController {
	return &GetExpenseByIdController{
		FindExpenseByIdRepository: findExpenseById,
	}
}

func (c *GetExpenseByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	expense, err := c.FindExpenseByIdRepository.Find(userId, expenseId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expense",
		}, http.StatusInternalServerError)
	}
	if expense == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Expense not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(expense, http.StatusOK)
}
