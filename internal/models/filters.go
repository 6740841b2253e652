package models

import (
	"net/url"
	"strconv"
)

// ExpenseFilters narrows GET /expenses. Zero values are omitted.
type ExpenseFilters struct {
	Period   string
	Category string
	MonthID  int64
}

func (f ExpenseFilters) Query() url.Values {
	q := url.Values{}
	setString(q, "period", f.Period)
	setString(q, "category", f.Category)
	setID(q, "month_id", f.MonthID)
	return q
}

type IncomeFilters struct {
	Period       string
	IncomeTypeID int64
	MonthID      int64
}

func (f IncomeFilters) Query() url.Values {
	q := url.Values{}
	setString(q, "period", f.Period)
	setID(q, "income_type_id", f.IncomeTypeID)
	setID(q, "month_id", f.MonthID)
	return q
}

// SummaryFilters scopes the aggregate endpoints.
type SummaryFilters struct {
	Period  string
	MonthID int64
}

func (f SummaryFilters) Query() url.Values {
	q := url.Values{}
	setString(q, "period", f.Period)
	setID(q, "month_id", f.MonthID)
	return q
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setID(q url.Values, key string, v int64) {
	if v != 0 {
		q.Set(key, strconv.FormatInt(v, 10))
	}
}
