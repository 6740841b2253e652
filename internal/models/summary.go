package models

import "github.com/shopspring/decimal"

type SummaryTotals struct {
	TotalBudgetedExpenses float64 `json:"total_budgeted_expenses"`
	TotalCurrentExpenses  float64 `json:"total_current_expenses"`
	TotalBudgetedIncome   float64 `json:"total_budgeted_income"`
	TotalCurrentIncome    float64 `json:"total_current_income"`
	TotalBudgeted         float64 `json:"total_budgeted"`
	TotalCurrent          float64 `json:"total_current"`
}

func (s SummaryTotals) BalanceBudgeted() float64 {
	return sub(s.TotalBudgetedIncome, s.TotalBudgetedExpenses)
}

func (s SummaryTotals) BalanceCurrent() float64 {
	return sub(s.TotalCurrentIncome, s.TotalCurrentExpenses)
}

func (s SummaryTotals) ExpensesOverBudget() bool {
	return s.TotalCurrentExpenses > s.TotalBudgetedExpenses
}

func (s SummaryTotals) IncomeUnderBudget() bool {
	return s.TotalCurrentIncome < s.TotalBudgetedIncome
}

type CategorySummary struct {
	Category   string  `json:"category"`
	Budget     float64 `json:"budget"`
	Total      float64 `json:"total"`
	OverBudget bool    `json:"over_budget"`
}

func (c CategorySummary) Remaining() float64 { return sub(c.Budget, c.Total) }

type IncomeTypeSummary struct {
	IncomeType string  `json:"income_type"`
	Budget     float64 `json:"budget"`
	Total      float64 `json:"total"`
}

func (i IncomeTypeSummary) Remaining() float64 { return sub(i.Budget, i.Total) }

type PeriodSummary struct {
	Period        string  `json:"period"`
	Color         string  `json:"color"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Difference    float64 `json:"difference"`
}

type PeriodSummaryResponse struct {
	Periods              []PeriodSummary `json:"periods"`
	GrandTotalIncome     float64         `json:"grand_total_income"`
	GrandTotalExpenses   float64         `json:"grand_total_expenses"`
	GrandTotalDifference float64         `json:"grand_total_difference"`
}

func sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}
