package expense

import (
	"net/http"
	"strconv"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type DeleteExpenseController struct {
	DeleteExpenseRepository   usecase.DeleteExpenseRepository
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewDeleteExpenseController(
	deleteExpense usecase.DeleteExpenseRepository,
	findExpenseById usecase.FindExpenseByIdRepository,
) *DeleteExpenseController {
	return &DeleteExpenseController{
		DeleteExpenseRepository:   deleteExpense,
		FindExpenseByIdRepository: findExpenseById,
	}
}

type DeleteExpenseResponse struct {
	Message string `json:"message"`
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteExpenseRepository.Delete(userId, expenseId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error deleting expense",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&DeleteExpenseResponse{
		Message: "Expense deleted successfully",
	}, http.StatusOK)
}
