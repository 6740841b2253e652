// Package models holds the wire records exchanged with the budget API and
// the small derived calculations the dashboard needs.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	IsActive bool    `json:"is_active"`
	IsAdmin  bool    `json:"is_admin"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Purchase is one line item under an expense.
type Purchase struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Date   *string `json:"date,omitempty"`
}

type Expense struct {
	ID          int64      `json:"id"`
	ExpenseName string     `json:"expense_name"`
	Period      string     `json:"period"`
	Category    string     `json:"category"`
	Budget      float64    `json:"budget"`
	Cost        float64    `json:"cost"`
	Notes       *string    `json:"notes,omitempty"`
	MonthID     int64      `json:"month_id"`
	Purchases   []Purchase `json:"purchases,omitempty"`
	Order       int        `json:"order"`
	ExpenseDate *string    `json:"expense_date,omitempty"`
}

// PurchasesTotal sums the purchase amounts exactly.
func (e Expense) PurchasesTotal() float64 {
	return SumPurchases(e.Purchases)
}

// Remaining is budget minus cost; negative means over budget.
func (e Expense) Remaining() float64 {
	return decimal.NewFromFloat(e.Budget).Sub(decimal.NewFromFloat(e.Cost)).InexactFloat64()
}

func (e Expense) HasPurchases() bool {
	return len(e.Purchases) > 0
}

func SumPurchases(ps []Purchase) float64 {
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(decimal.NewFromFloat(p.Amount))
	}
	return total.InexactFloat64()
}

type ExpenseCreate struct {
	ExpenseName string     `json:"expense_name"`
	Period      string     `json:"period"`
	Category    string     `json:"category"`
	Budget      float64    `json:"budget"`
	Cost        float64    `json:"cost"`
	Notes       *string    `json:"notes,omitempty"`
	MonthID     int64      `json:"month_id"`
	Purchases   []Purchase `json:"purchases,omitempty"`
	ExpenseDate *string    `json:"expense_date,omitempty"`
}

// ExpenseUpdate is a partial update: nil fields are not sent.
type ExpenseUpdate struct {
	ExpenseName *string    `json:"expense_name,omitempty"`
	Period      *string    `json:"period,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	Cost        *float64   `json:"cost,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	MonthID     *int64     `json:"month_id,omitempty"`
	Purchases   []Purchase `json:"purchases,omitempty"`
	ExpenseDate *string    `json:"expense_date,omitempty"`
}

type ExpenseReorder struct {
	ExpenseIDs []int64 `json:"expense_ids"`
}

type PayRequest struct {
	Amount *float64 `json:"amount,omitempty"`
}

type CloneResult struct {
	Message           string `json:"message"`
	ClonedCount       int    `json:"cloned_count"`
	ClonedIncomeCount int    `json:"cloned_income_count"`
	NextMonthID       int64  `json:"next_month_id"`
	NextMonthName     string `json:"next_month_name"`
}

type Income struct {
	ID           int64   `json:"id"`
	IncomeTypeID int64   `json:"income_type_id"`
	Period       string  `json:"period"`
	Budget       float64 `json:"budget"`
	Amount       float64 `json:"amount"`
	MonthID      int64   `json:"month_id"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
	CreatedBy    *string `json:"created_by,omitempty"`
	UpdatedBy    *string `json:"updated_by,omitempty"`
}

type IncomeCreate struct {
	IncomeTypeID int64   `json:"income_type_id"`
	Period       string  `json:"period"`
	Budget       float64 `json:"budget"`
	Amount       float64 `json:"amount"`
	MonthID      int64   `json:"month_id"`
}

type IncomeUpdate struct {
	IncomeTypeID *int64   `json:"income_type_id,omitempty"`
	Period       *string  `json:"period,omitempty"`
	Budget       *float64 `json:"budget,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	MonthID      *int64   `json:"month_id,omitempty"`
}

// Category, Period and IncomeType share the same shape on the wire.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Period struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type IncomeType struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NamedCreate creates a category, period or income type. An empty color is
// left for the server to default.
type NamedCreate struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type NamedUpdate struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

type Month struct {
	ID        int64   `json:"id"`
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	IsClosed  bool    `json:"is_closed"`
	ClosedAt  *string `json:"closed_at,omitempty"`
	ClosedBy  *string `json:"closed_by,omitempty"`
}

// DisplayName renders "January 2024"; out-of-range months fall back to the
// server-provided name.
func (m Month) DisplayName() string {
	if m.Month < 1 || m.Month > 12 {
		return m.Name
	}
	return fmt.Sprintf("%s %d", time.Month(m.Month).String(), m.Year)
}

type MonthCreate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type MonthCloseResult struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	IsClosed bool    `json:"is_closed"`
	ClosedAt *string `json:"closed_at,omitempty"`
	ClosedBy *string `json:"closed_by,omitempty"`
	Message  string  `json:"message"`
}
