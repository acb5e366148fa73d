// Package summary computes the monthly spending summary from a user's
// expenses, recurring costs and budget setting. It only reads; calling it
// repeatedly with unchanged data yields identical results.
package summary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/domain/usecase"
)

var (
	ErrMonthOutOfRange = errors.New("month must be between 1 and 12")
	ErrMalformedDate   = errors.New("malformed expense date")
)

var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02",
}

type Aggregator struct {
	FindExpensesByUserIdRepository       usecase.FindExpensesByUserIdRepository
	FindRecurringCostsByUserIdRepository usecase.FindRecurringCostsByUserIdRepository
	FindBudgetSettingByUserIdRepository  usecase.FindBudgetSettingByUserIdRepository
}

func NewAggregator(
	findExpenses usecase.FindExpensesByUserIdRepository,
	findRecurringCosts usecase.FindRecurringCostsByUserIdRepository,
	findBudgetSetting usecase.FindBudgetSettingByUserIdRepository,
) *Aggregator {
	return &Aggregator{
		FindExpensesByUserIdRepository:       findExpenses,
		FindRecurringCostsByUserIdRepository: findRecurringCosts,
		FindBudgetSettingByUserIdRepository:  findBudgetSetting,
	}
}

// ComputeMonthlySummary builds the summary for one calendar month. Absent
// data never fails: no expenses, no recurring costs and no budget all
// degrade to zero-valued fields. A stored expense date that cannot be
// parsed fails the whole computation instead of being skipped.
func (a *Aggregator) ComputeMonthlySummary(userId int64, year int, month int) (*models.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, ErrMonthOutOfRange
	}

	expenses, err := a.FindExpensesByUserIdRepository.Find(userId)
	if err != nil {
		return nil, err
	}

	monthExpenses := []models.Expense{}
	for _, expense := range expenses {
		date, err := ParseExpenseDate(expense.Date)
		if err != nil {
			return nil, err
		}
		if date.Year() == year && int(date.Month()) == month {
			monthExpenses = append(monthExpenses, expense)
		}
	}

	totalSpent := 0.0
	categoryBreakdown := map[string]float64{}
	dailyTotals := map[int]float64{}
	for _, expense := range monthExpenses {
		totalSpent += expense.Amount
		categoryBreakdown[expense.Category] += expense.Amount
		// Day bucketing uses the local date components of the stored
		// timestamp, not a time-zone-aware day boundary.
		date, err := ParseExpenseDate(expense.Date)
		if err != nil {
			return nil, err
		}
		dailyTotals[date.Day()] += expense.Amount
	}

	setting, err := a.FindBudgetSettingByUserIdRepository.Find(userId)
	if err != nil {
		return nil, err
	}
	monthlyBudget := 0.0
	if setting != nil {
		monthlyBudget = setting.MonthlyBudget
	}

	// A zero budget is indistinguishable from "never configured": both
	// report remaining = 0 and percentage_used = 0 regardless of spend.
	// Kept as-is rather than guessed at; see DESIGN.md.
	remaining := 0.0
	percentageUsed := 0.0
	if monthlyBudget > 0 {
		remaining = monthlyBudget - totalSpent
		percentageUsed = totalSpent / monthlyBudget * 100
	}

	recurringCosts, err := a.FindRecurringCostsByUserIdRepository.Find(userId)
	if err != nil {
		return nil, err
	}
	if recurringCosts == nil {
		recurringCosts = []models.RecurringCost{}
	}

	monthlyRecurring := 0.0
	for _, cost := range recurringCosts {
		switch cost.Frequency {
		case models.FrequencyMonthly:
			monthlyRecurring += cost.Amount
		case models.FrequencyAnnual:
			monthlyRecurring += cost.Amount / 12
		}
		// Unknown frequencies contribute nothing.
	}

	daysInMonth := DaysInMonth(year, month)
	dailySpending := make([]models.DailySpending, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		dailySpending = append(dailySpending, models.DailySpending{
			Day:    day,
			Amount: dailyTotals[day],
		})
	}

	return &models.MonthlySummary{
		TotalSpent:        totalSpent,
		MonthlyBudget:     monthlyBudget,
		Remaining:         remaining,
		PercentageUsed:    percentageUsed,
		CategoryBreakdown: categoryBreakdown,
		MonthlyRecurring:  monthlyRecurring,
		ExpenseCount:      len(monthExpenses),
		DailySpending:     dailySpending,
		Expenses:          monthExpenses,
		RecurringCosts:    recurringCosts,
	}, nil
}

// ParseExpenseDate parses a stored ISO-8601 date or timestamp, tolerating
// a trailing literal "Z" UTC marker.
func ParseExpenseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSuffix(value, "Z")
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, trimmed); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
}

// DaysInMonth returns the number of calendar days in (year, month),
// accounting for leap years.
func DaysInMonth(year int, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
