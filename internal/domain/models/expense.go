package models

type Expense struct {
	Id          int64   `json:"id" bson:"_id"`
	UserId      int64   `json:"user_id" bson:"user_id"`
	Amount      float64 `json:"amount" bson:"amount"`
	Category    string  `json:"category" bson:"category"`
	Description string  `json:"description" bson:"description"`
	Date        string  `json:"date" bson:"date"`
	CreatedAt   string  `json:"created_at" bson:"created_at"`
}

// ExpensePatch carries the fields of a partial update. Nil means
// "leave the stored value untouched".
type ExpensePatch struct {
	Amount      *float64
	Category    *string
	Description *string
	Date        *string
}

func (p *ExpensePatch) IsEmpty() bool {
	return p.Amount == nil && p.Category == nil && p.Description == nil && p.Date == nil
}
