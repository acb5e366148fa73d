package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/domain/summary"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpenseRepository struct {
	expenses []models.Expense
	err      error
}

func (f *fakeExpenseRepository) Find(userId int64) ([]models.Expense, error) {
	return f.expenses, f.err
}

type fakeRecurringCostRepository struct {
	costs []models.RecurringCost
}

func (f *fakeRecurringCostRepository) Find(userId int64) ([]models.RecurringCost, error) {
	return f.costs, nil
}

type fakeBudgetRepository struct {
	setting *models.BudgetSetting
}

func (f *fakeBudgetRepository) Find(userId int64) (*models.BudgetSetting, error) {
	return f.setting, nil
}

func summaryRequest(userId string, year string, month string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodGet, "/budget/spending/"+year+"/"+month, nil)
	req.SetPathValue("year", year)
	req.SetPathValue("month", month)
	req.Header.Set("UserId", userId)

	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decodeBody(t *testing.T, response *presentationProtocols.HttpResponse, target any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(response.Body).Decode(target))
}

func TestGetSpendingSummaryController(t *testing.T) {
	expenses := []models.Expense{
		{Id: 1, UserId: 7, Amount: 20, Category: "food", Date: "2024-03-05"},
		{Id: 2, UserId: 7, Amount: 5, Category: "food", Date: "2024-03-05"},
		{Id: 3, UserId: 7, Amount: 999, Category: "travel", Date: "2024-04-01"},
	}

	newController := func(expenseErr error) *GetSpendingSummaryController {
		return NewGetSpendingSummaryController(summary.NewAggregator(
			&fakeExpenseRepository{expenses: expenses, err: expenseErr},
			&fakeRecurringCostRepository{costs: []models.RecurringCost{
				{Name: "rent", Amount: 900, Frequency: "monthly"},
			}},
			&fakeBudgetRepository{setting: &models.BudgetSetting{UserId: 7, MonthlyBudget: 100}},
		))
	}

	t.Run("returns the monthly summary", func(t *testing.T) {
		response := newController(nil).Handle(summaryRequest("7", "2024", "3"))
		require.Equal(t, http.StatusOK, response.StatusCode)

		var got models.MonthlySummary
		decodeBody(t, response, &got)

		assert.Equal(t, 25.0, got.TotalSpent)
		assert.Equal(t, 2, got.ExpenseCount)
		assert.Equal(t, 100.0, got.MonthlyBudget)
		assert.Equal(t, 75.0, got.Remaining)
		assert.Equal(t, 25.0, got.PercentageUsed)
		assert.Equal(t, 900.0, got.MonthlyRecurring)
		assert.Len(t, got.DailySpending, 31)
	})

	t.Run("rejects a month outside 1..12", func(t *testing.T) {
		response := newController(nil).Handle(summaryRequest("7", "2024", "13"))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("rejects non-numeric path values", func(t *testing.T) {
		response := newController(nil).Handle(summaryRequest("7", "2024", "march"))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)

		response = newController(nil).Handle(summaryRequest("7", "twenty", "3"))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("rejects a missing user id", func(t *testing.T) {
		response := newController(nil).Handle(summaryRequest("", "2024", "3"))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("reports store failures without leaking detail", func(t *testing.T) {
		response := newController(errors.New("connection reset")).Handle(summaryRequest("7", "2024", "3"))
		require.Equal(t, http.StatusInternalServerError, response.StatusCode)

		var got presentationProtocols.ErrorResponse
		decodeBody(t, response, &got)
		assert.Equal(t, "error computing spending summary", got.Error)
	})

	t.Run("surfaces corrupt stored dates", func(t *testing.T) {
		controller := NewGetSpendingSummaryController(summary.NewAggregator(
			&fakeExpenseRepository{expenses: []models.Expense{{Amount: 1, Date: "bogus"}}},
			&fakeRecurringCostRepository{},
			&fakeBudgetRepository{},
		))

		response := controller.Handle(summaryRequest("7", "2024", "3"))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}
