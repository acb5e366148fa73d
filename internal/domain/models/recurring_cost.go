package models

const (
	FrequencyMonthly = "monthly"
	FrequencyAnnual  = "annual"
)

type RecurringCost struct {
	Id        int64   `json:"id" bson:"_id"`
	UserId    int64   `json:"user_id" bson:"user_id"`
	Name      string  `json:"name" bson:"name"`
	Amount    float64 `json:"amount" bson:"amount"`
	Category  string  `json:"category" bson:"category"`
	Frequency string  `json:"frequency" bson:"frequency"`
	StartDate string  `json:"start_date,omitempty" bson:"start_date,omitempty"`
	CreatedAt string  `json:"created_at" bson:"created_at"`
}

type RecurringCostPatch struct {
	Name      *string
	Amount    *float64
	Category  *string
	Frequency *string
	StartDate *string
}

func (p *RecurringCostPatch) IsEmpty() bool {
	return p.Name == nil && p.Amount == nil && p.Category == nil && p.Frequency == nil && p.StartDate == nil
}
