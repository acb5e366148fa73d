package models

type DailySpending struct {
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
}

// MonthlySummary is computed on demand for one (user, year, month) and
// never persisted.
type MonthlySummary struct {
	TotalSpent        float64            `json:"total_spent"`
	MonthlyBudget     float64            `json:"monthly_budget"`
	Remaining         float64            `json:"remaining"`
	PercentageUsed    float64            `json:"percentage_used"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	MonthlyRecurring  float64            `json:"monthly_recurring"`
	ExpenseCount      int                `json:"expense_count"`
	DailySpending     []DailySpending    `json:"daily_spending"`
	Expenses          []Expense          `json:"expenses"`
	RecurringCosts    []RecurringCost    `json:"recurring_costs"`
}
