package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kleyson/appz-budget/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", "key-1", append([]Option{WithVersion("1.2.3")}, opts...)...)
}

func TestHeadersAndBearerToken(t *testing.T) {
	t.Parallel()
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		require.Equal(t, "/api/v1/auth/me", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":1,"email":"a@b.c","is_active":true,"is_admin":false}`)
	})

	_, err := c.Auth().Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "key-1", got.Get("X-API-Key"))
	require.Equal(t, "TUI/1.2.3", got.Get("X-Client-Info"))
	require.Equal(t, "application/json", got.Get("Content-Type"))
	require.NotEmpty(t, got.Get("X-Request-ID"))
	require.Empty(t, got.Get("Authorization"))

	c.SetToken("tok")
	_, err = c.Auth().Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok", got.Get("Authorization"))

	c.ClearToken()
	_, err = c.Auth().Me(context.Background())
	require.NoError(t, err)
	require.Empty(t, got.Get("Authorization"))
}

func TestStatusMapping(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{"unauthorized", http.StatusUnauthorized, `{"detail":"nope"}`, func(t *testing.T, err error) {
			require.ErrorIs(t, err, ErrUnauthorized)
			require.True(t, IsUnauthorized(err))
		}},
		{"not found", http.StatusNotFound, ``, func(t *testing.T, err error) {
			require.ErrorIs(t, err, ErrNotFound)
		}},
		{"server error", http.StatusUnprocessableEntity, `{"detail":"bad"}`, func(t *testing.T, err error) {
			var se *ServerError
			require.ErrorAs(t, err, &se)
			require.Equal(t, 422, se.Status)
			require.Equal(t, `{"detail":"bad"}`, se.Body)
		}},
		{"malformed", http.StatusOK, `not json`, func(t *testing.T, err error) {
			var ie *InvalidResponseError
			require.ErrorAs(t, err, &ie)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := c.Months().List(context.Background())
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestNetworkErrorOnTimeout(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(block)

	_, err := c.Months().Current(context.Background())
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
}

func TestNetworkErrorOnRefusedConnection(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, "k").Categories().List(context.Background())
	var ne *NetworkError
	require.True(t, errors.As(err, &ne))
}

func TestExpenseListEncodesFilters(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "Fixed Costs", r.URL.Query().Get("period"))
		require.Equal(t, "Food & Drink", r.URL.Query().Get("category"))
		require.Equal(t, "4", r.URL.Query().Get("month_id"))
		_, _ = io.WriteString(w, `[{"id":1,"expense_name":"Rent","period":"Fixed Costs","category":"Food & Drink","budget":10,"cost":0,"month_id":4,"order":0}]`)
	})

	got, err := c.Expenses().List(context.Background(), models.ExpenseFilters{Period: "Fixed Costs", Category: "Food & Drink", MonthID: 4})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Rent", got[0].ExpenseName)
}

func TestDeleteExpectsNoBody(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/v1/income-types/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.IncomeTypes().Delete(context.Background(), 9))
}

func TestActionEndpoints(t *testing.T) {
	t.Parallel()
	type call struct {
		method, path string
		body         map[string]any
	}
	var calls []call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, &body))
		}
		calls = append(calls, call{r.Method, r.URL.Path, body})
		switch r.URL.Path {
		case "/api/v1/expenses/clone-to-next-month/3":
			_, _ = io.WriteString(w, `{"message":"ok","cloned_count":4,"cloned_income_count":2,"next_month_id":5,"next_month_name":"May 2024"}`)
		case "/api/v1/months/3/close":
			_, _ = io.WriteString(w, `{"id":3,"name":"April 2024","is_closed":true,"message":"closed"}`)
		default:
			_, _ = io.WriteString(w, `{}`)
		}
	})
	ctx := context.Background()

	require.NoError(t, c.Expenses().Reorder(ctx, []int64{3, 1, 2}))
	res, err := c.Expenses().CloneToNextMonth(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 4, res.ClonedCount)
	amount := 12.5
	_, err = c.Expenses().Pay(ctx, 7, &amount)
	require.NoError(t, err)
	closed, err := c.Months().Close(ctx, 3)
	require.NoError(t, err)
	require.True(t, closed.IsClosed)
	_, err = c.Auth().ChangePassword(ctx, "old", "newpassword")
	require.NoError(t, err)

	require.Equal(t, []call{
		{http.MethodPost, "/api/v1/expenses/reorder", map[string]any{"expense_ids": []any{3.0, 1.0, 2.0}}},
		{http.MethodPost, "/api/v1/expenses/clone-to-next-month/3", nil},
		{http.MethodPost, "/api/v1/expenses/7/pay", map[string]any{"amount": 12.5}},
		{http.MethodPost, "/api/v1/months/3/close", nil},
		{http.MethodPost, "/api/v1/auth/change-password", map[string]any{"current_password": "old", "new_password": "newpassword"}},
	}, calls)
}
