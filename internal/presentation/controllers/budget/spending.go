package budget

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/budgify/backend/internal/domain/summary"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
)

type GetSpendingSummaryController struct {
	Aggregator *summary.Aggregator
}

func NewGetSpendingSummaryController(aggregator *summary.Aggregator) *GetSpendingSummaryController {
	return &GetSpendingSummaryController{
		Aggregator: aggregator,
	}
}

func (c *GetSpendingSummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	year, err := strconv.Atoi(r.Req.PathValue("year"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid year",
		}, http.StatusBadRequest)
	}

	month, err := strconv.Atoi(r.Req.PathValue("month"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid month",
		}, http.StatusBadRequest)
	}

	monthlySummary, err := c.Aggregator.ComputeMonthlySummary(userId, year, month)
	if errors.Is(err, summary.ErrMonthOutOfRange) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "month must be between 1 and 12",
		}, http.StatusBadRequest)
	}
	if errors.Is(err, summary.ErrMalformedDate) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a stored expense has a malformed date",
		}, http.StatusBadRequest)
	}
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error computing spending summary",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(monthlySummary, http.StatusOK)
}
