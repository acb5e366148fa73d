package summary

import (
	"errors"
	"testing"

	"github.com/budgify/backend/internal/domain/models"
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
	err   error
}

func (f *fakeRecurringCostRepository) Find(userId int64) ([]models.RecurringCost, error) {
	return f.costs, f.err
}

type fakeBudgetRepository struct {
	setting *models.BudgetSetting
	err     error
}

func (f *fakeBudgetRepository) Find(userId int64) (*models.BudgetSetting, error) {
	return f.setting, f.err
}

func newAggregator(expenses []models.Expense, costs []models.RecurringCost, setting *models.BudgetSetting) *Aggregator {
	return NewAggregator(
		&fakeExpenseRepository{expenses: expenses},
		&fakeRecurringCostRepository{costs: costs},
		&fakeBudgetRepository{setting: setting},
	)
}

func TestComputeMonthlySummary(t *testing.T) {
	t.Run("user with no data degrades to zero-valued fields", func(t *testing.T) {
		agg := newAggregator(nil, nil, nil)

		got, err := agg.ComputeMonthlySummary(1, 2024, 3)
		require.NoError(t, err)

		assert.Equal(t, 0.0, got.TotalSpent)
		assert.Equal(t, 0, got.ExpenseCount)
		assert.Empty(t, got.CategoryBreakdown)
		assert.NotNil(t, got.CategoryBreakdown)
		assert.Equal(t, 0.0, got.MonthlyRecurring)
		require.Len(t, got.DailySpending, 31)
		for _, day := range got.DailySpending {
			assert.Equal(t, 0.0, day.Amount)
		}
		assert.NotNil(t, got.Expenses)
		assert.NotNil(t, got.RecurringCosts)
	})

	t.Run("selects only expenses of the queried month", func(t *testing.T) {
		expenses := []models.Expense{
			{Id: 1, UserId: 1, Amount: 20, Category: "food", Date: "2024-03-05"},
			{Id: 2, UserId: 1, Amount: 5, Category: "food", Date: "2024-03-05"},
			{Id: 3, UserId: 1, Amount: 999, Category: "travel", Date: "2024-04-01"},
		}
		agg := newAggregator(expenses, nil, nil)

		got, err := agg.ComputeMonthlySummary(1, 2024, 3)
		require.NoError(t, err)

		assert.Equal(t, 25.0, got.TotalSpent)
		assert.Equal(t, 2, got.ExpenseCount)
		require.Len(t, got.DailySpending, 31)
		for _, day := range got.DailySpending {
			if day.Day == 5 {
				assert.Equal(t, 25.0, day.Amount)
			} else {
				assert.Equal(t, 0.0, day.Amount)
			}
		}
		assert.Len(t, got.Expenses, 2)
	})

	t.Run("daily and category partitions add up to the total", func(t *testing.T) {
		expenses := []models.Expense{
			{Amount: 12.5, Category: "food", Date: "2024-03-01T08:00:00Z"},
			{Amount: 7.5, Category: "food", Date: "2024-03-01T20:15:00Z"},
			{Amount: 30, Category: "transport", Date: "2024-03-14"},
			{Amount: 9.99, Category: "fun", Date: "2024-03-31T23:59:59Z"},
		}
		agg := newAggregator(expenses, nil, nil)

		got, err := agg.ComputeMonthlySummary(1, 2024, 3)
		require.NoError(t, err)

		daily := 0.0
		for _, day := range got.DailySpending {
			daily += day.Amount
		}
		assert.InDelta(t, got.TotalSpent, daily, 1e-9)

		byCategory := 0.0
		for _, amount := range got.CategoryBreakdown {
			byCategory += amount
		}
		assert.InDelta(t, got.TotalSpent, byCategory, 1e-9)
		assert.Equal(t, 20.0, got.CategoryBreakdown["food"])
	})

	t.Run("budget remaining and percentage", func(t *testing.T) {
		expenses := []models.Expense{
			{Amount: 250, Category: "rent", Date: "2024-03-10"},
		}
		setting := &models.BudgetSetting{UserId: 1, MonthlyBudget: 1000}
		agg := newAggregator(expenses, nil, setting)

		got, err := agg.ComputeMonthlySummary(1, 2024, 3)
		require.NoError(t, err)

		assert.Equal(t, 1000.0, got.MonthlyBudget)
		assert.Equal(t, 750.0, got.Remaining)
		assert.Equal(t, 25.0, got.PercentageUsed)
	})

	t.Run("zero budget reports zero remaining and percentage regardless of spend", func(t *testing.T) {
		expenses := []models.Expense{
			{Amount: 500, Category: "rent", Date: "2024-03-10"},
		}

		for name, setting := range map[string]*models.BudgetSetting{
			"absent":          nil,
			"explicitly zero": {UserId: 1, MonthlyBudget: 0},
		} {
			agg := newAggregator(expenses, nil, setting)
			got, err := agg.ComputeMonthlySummary(1, 2024, 3)
			require.NoError(t, err, name)

			assert.Equal(t, 0.0, got.Remaining, name)
			assert.Equal(t, 0.0, got.PercentageUsed, name)
			assert.Equal(t, 500.0, got.TotalSpent, name)
		}
	})

	t.Run("annual recurring costs are normalized to a twelfth", func(t *testing.T) {
		costs := []models.RecurringCost{
			{Name: "insurance", Amount: 1200, Frequency: "annual"},
			{Name: "streaming", Amount: 50, Frequency: "monthly"},
			{Name: "mystery", Amount: 80, Frequency: "weekly"},
		}
		agg := newAggregator(nil, costs, nil)

		got, err := agg.ComputeMonthlySummary(1, 2024, 3)
		require.NoError(t, err)

		// 1200/12 + 50; the unknown frequency contributes nothing.
		assert.Equal(t, 150.0, got.MonthlyRecurring)
		assert.Len(t, got.RecurringCosts, 3)
	})

	t.Run("daily series length follows the calendar", func(t *testing.T) {
		agg := newAggregator(nil, nil, nil)

		leap, err := agg.ComputeMonthlySummary(1, 2024, 2)
		require.NoError(t, err)
		assert.Len(t, leap.DailySpending, 29)

		nonLeap, err := agg.ComputeMonthlySummary(1, 2023, 2)
		require.NoError(t, err)
		assert.Len(t, nonLeap.DailySpending, 28)
	})

	t.Run("month out of range", func(t *testing.T) {
		agg := newAggregator(nil, nil, nil)

		for _, month := range []int{0, 13, -1} {
			_, err := agg.ComputeMonthlySummary(1, 2024, month)
			assert.ErrorIs(t, err, ErrMonthOutOfRange)
		}
	})

	t.Run("malformed stored date fails the whole computation", func(t *testing.T) {
		expenses := []models.Expense{
			{Amount: 10, Category: "food", Date: "2024-03-05"},
			{Amount: 10, Category: "food", Date: "not-a-date"},
		}
		agg := newAggregator(expenses, nil, nil)

		_, err := agg.ComputeMonthlySummary(1, 2024, 3)
		assert.ErrorIs(t, err, ErrMalformedDate)
	})

	t.Run("store failures propagate", func(t *testing.T) {
		storeErr := errors.New("store unavailable")
		agg := NewAggregator(
			&fakeExpenseRepository{err: storeErr},
			&fakeRecurringCostRepository{},
			&fakeBudgetRepository{},
		)

		_, err := agg.ComputeMonthlySummary(1, 2024, 3)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("idempotent for unchanged inputs", func(t *testing.T) {
		expenses := []models.Expense{
			{Amount: 42, Category: "food", Date: "2024-03-05T12:00:00Z"},
		}
		costs := []models.RecurringCost{
			{Name: "rent", Amount: 900, Frequency: "monthly"},
		}
		setting := &models.BudgetSetting{UserId: 1, MonthlyBudget: 2000}
		agg := newAggregator(expenses, costs, setting)

		first, err := agg.ComputeMonthlySummary(1, 2024, 3)
		require.NoError(t, err)
		second, err := agg.ComputeMonthlySummary(1, 2024, 3)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestParseExpenseDate(t *testing.T) {
	cases := map[string]struct {
		value string
		day   int
		ok    bool
	}{
		"plain date":              {"2024-03-05", 5, true},
		"timestamp":               {"2024-03-05T18:30:00", 5, true},
		"timestamp with Z":        {"2024-03-05T18:30:00Z", 5, true},
		"timestamp with fraction": {"2024-03-05T18:30:00.123456Z", 5, true},
		"timestamp with offset":   {"2024-03-05T18:30:00-03:00", 5, true},
		"garbage":                 {"yesterday", 0, false},
		"empty":                   {"", 0, false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			date, err := ParseExpenseDate(tc.value)
			if !tc.ok {
				assert.ErrorIs(t, err, ErrMalformedDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.day, date.Day())
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, 3))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 30, DaysInMonth(2024, 4))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
}
