package models

// BudgetSetting holds the single monthly spending limit of a user.
// Writing replaces the previous value wholesale; no history is kept.
type BudgetSetting struct {
	UserId        int64   `json:"user_id" bson:"_id"`
	MonthlyBudget float64 `json:"monthly_budget" bson:"monthly_budget"`
	UpdatedAt     string  `json:"updated_at" bson:"updated_at"`
}
