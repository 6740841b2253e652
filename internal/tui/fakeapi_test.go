package tui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/kleyson/appz-budget/internal/models"
)

const (
	testEmail    = "ana@example.com"
	testPassword = "hunter22"
	testToken    = "tok-1"
)

// fakeAPI is an in-memory budget server. Handlers only cover what the
// dashboard calls.
type fakeAPI struct {
	mu sync.Mutex

	months      []models.Month
	current     int64
	categories  []models.Category
	periods     []models.Period
	incomeTypes []models.IncomeType
	expenses    []models.Expense
	incomes     []models.Income
	nextID      int64

	reordered []int64
	calls     []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		months: []models.Month{
			{ID: 1, Year: 2024, Month: 1, Name: "2024-01"},
			{ID: 2, Year: 2024, Month: 2, Name: "2024-02"},
			{ID: 3, Year: 2024, Month: 3, Name: "2024-03"},
		},
		current:     2,
		categories:  []models.Category{{ID: 1, Name: "Housing", Color: "#112233"}, {ID: 2, Name: "Food", Color: "#445566"}},
		periods:     []models.Period{{ID: 1, Name: "Fixed"}, {ID: 2, Name: "Variable"}},
		incomeTypes: []models.IncomeType{{ID: 7, Name: "Salary"}},
		expenses: []models.Expense{
			{ID: 10, ExpenseName: "Rent", Period: "Fixed", Category: "Housing", Budget: 1000, MonthID: 2},
			{ID: 11, ExpenseName: "Groceries", Period: "Variable", Category: "Food", Budget: 300, MonthID: 2,
				Purchases: []models.Purchase{{Name: "Market", Amount: 42.5}}, Cost: 42.5},
			{ID: 12, ExpenseName: "Power", Period: "Fixed", Category: "Housing", Budget: 80, MonthID: 2},
		},
		incomes: []models.Income{{ID: 20, IncomeTypeID: 7, Period: "Fixed", Budget: 3000, Amount: 3000, MonthID: 2}},
		nextID:  100,
	}
}

func (f *fakeAPI) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.calls = append(f.calls, r.Method+" "+r.URL.Path)
			f.mu.Unlock()
			if r.Header.Get("Authorization") != "Bearer "+testToken {
				http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			h(w, r)
		}
	}

	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != testEmail || req.Password != testPassword {
			http.Error(w, `{"detail":"Incorrect email or password"}`, http.StatusUnauthorized)
			return
		}
		writeJSON(w, models.Token{AccessToken: testToken, TokenType: "bearer", UserID: 1, Email: testEmail})
	})
	mux.HandleFunc("GET /api/v1/auth/me", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.User{ID: 1, Email: testEmail, IsActive: true})
	}))
	mux.HandleFunc("POST /api/v1/auth/change-password", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.MessageResponse{Message: "ok"})
	}))

	mux.HandleFunc("GET /api/v1/months", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, f.months)
	}))
	mux.HandleFunc("GET /api/v1/months/current", authed(func(w http.ResponseWriter, r *http.Request) {
		for _, m := range f.months {
			if m.ID == f.current {
				writeJSON(w, m)
				return
			}
		}
		http.NotFound(w, r)
	}))
	toggle := func(closed bool) http.HandlerFunc {
		return authed(func(w http.ResponseWriter, r *http.Request) {
			id := pathID(r)
			for i := range f.months {
				if f.months[i].ID == id {
					f.months[i].IsClosed = closed
					writeJSON(w, models.MonthCloseResult{ID: id, Name: f.months[i].Name, IsClosed: closed})
					return
				}
			}
			http.NotFound(w, r)
		})
	}
	mux.HandleFunc("POST /api/v1/months/{id}/close", toggle(true))
	mux.HandleFunc("POST /api/v1/months/{id}/open", toggle(false))

	mux.HandleFunc("GET /api/v1/categories", authed(func(w http.ResponseWriter, r *http.Request) { writeJSON(w, f.categories) }))
	mux.HandleFunc("POST /api/v1/categories", authed(func(w http.ResponseWriter, r *http.Request) {
		var in models.NamedCreate
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.nextID++
		c := models.Category{ID: f.nextID, Name: in.Name, Color: in.Color}
		f.categories = append(f.categories, c)
		writeJSON(w, c)
	}))
	mux.HandleFunc("GET /api/v1/categories/summary", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []models.CategorySummary{{Category: "Housing", Budget: 1080, Total: 0}})
	}))
	mux.HandleFunc("GET /api/v1/periods", authed(func(w http.ResponseWriter, r *http.Request) { writeJSON(w, f.periods) }))
	mux.HandleFunc("GET /api/v1/income-types", authed(func(w http.ResponseWriter, r *http.Request) { writeJSON(w, f.incomeTypes) }))
	mux.HandleFunc("GET /api/v1/income-types/summary", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []models.IncomeTypeSummary{{IncomeType: "Salary", Budget: 3000, Total: 3000}})
	}))
	mux.HandleFunc("GET /api/v1/summary/totals", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.SummaryTotals{TotalBudgetedExpenses: 1380, TotalBudgetedIncome: 3000, TotalCurrentIncome: 3000})
	}))
	mux.HandleFunc("GET /api/v1/summary/by-period", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.PeriodSummaryResponse{Periods: []models.PeriodSummary{{Period: "Fixed", TotalIncome: 3000}}})
	}))

	mux.HandleFunc("GET /api/v1/expenses", authed(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		out := []models.Expense{}
		for _, e := range f.expenses {
			if id := q.Get("month_id"); id != "" && strconv.FormatInt(e.MonthID, 10) != id {
				continue
			}
			if p := q.Get("period"); p != "" && e.Period != p {
				continue
			}
			if c := q.Get("category"); c != "" && e.Category != c {
				continue
			}
			out = append(out, e)
		}
		writeJSON(w, out)
	}))
	mux.HandleFunc("POST /api/v1/expenses", authed(func(w http.ResponseWriter, r *http.Request) {
		var in models.ExpenseCreate
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.nextID++
		e := models.Expense{ID: f.nextID, ExpenseName: in.ExpenseName, Period: in.Period, Category: in.Category,
			Budget: in.Budget, Cost: in.Cost, MonthID: in.MonthID, Purchases: in.Purchases}
		f.expenses = append(f.expenses, e)
		writeJSON(w, e)
	}))
	mux.HandleFunc("DELETE /api/v1/expenses/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		for i, e := range f.expenses {
			if e.ID == id {
				f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		http.NotFound(w, r)
	}))
	// clone-to-next-month/{month} and {id}/pay share a shape, so one route
	// serves both.
	mux.HandleFunc("POST /api/v1/expenses/{id}/{action}", authed(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "clone-to-next-month" {
			writeJSON(w, models.CloneResult{ClonedCount: len(f.expenses), ClonedIncomeCount: len(f.incomes), NextMonthID: 3, NextMonthName: "March 2024"})
			return
		}
		if r.PathValue("action") != "pay" {
			http.NotFound(w, r)
			return
		}
		var in models.PayRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		id := pathID(r)
		for i := range f.expenses {
			if f.expenses[i].ID == id && in.Amount != nil {
				f.expenses[i].Purchases = []models.Purchase{{Name: "Payment", Amount: *in.Amount}}
				f.expenses[i].Cost = *in.Amount
				writeJSON(w, f.expenses[i])
				return
			}
		}
		http.NotFound(w, r)
	}))
	mux.HandleFunc("POST /api/v1/expenses/reorder", authed(func(w http.ResponseWriter, r *http.Request) {
		var in models.ExpenseReorder
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.reordered = in.ExpenseIDs
		byID := make(map[int64]models.Expense, len(f.expenses))
		for _, e := range f.expenses {
			byID[e.ID] = e
		}
		sorted := make([]models.Expense, 0, len(in.ExpenseIDs))
		for _, id := range in.ExpenseIDs {
			sorted = append(sorted, byID[id])
		}
		f.expenses = sorted
		writeJSON(w, models.MessageResponse{Message: "ok"})
	}))
	mux.HandleFunc("GET /api/v1/incomes", authed(func(w http.ResponseWriter, r *http.Request) {
		out := []models.Income{}
		for _, in := range f.incomes {
			if id := r.URL.Query().Get("month_id"); id != "" && strconv.FormatInt(in.MonthID, 10) != id {
				continue
			}
			out = append(out, in)
		}
		writeJSON(w, out)
	}))
	mux.HandleFunc("POST /api/v1/incomes", authed(func(w http.ResponseWriter, r *http.Request) {
		var in models.IncomeCreate
		_ = json.NewDecoder(r.Body).Decode(&in)
		f.nextID++
		inc := models.Income{ID: f.nextID, IncomeTypeID: in.IncomeTypeID, Period: in.Period, Budget: in.Budget, Amount: in.Amount, MonthID: in.MonthID}
		f.incomes = append(f.incomes, inc)
		writeJSON(w, inc)
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeAPI) called(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprint(err), http.StatusInternalServerError)
	}
}
