package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.ObserveRequest(http.MethodGet, "/api/positions", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/positions", http.StatusOK, 10*time.Millisecond)

	got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/api/positions", "200"))
	if got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
}

func TestMetrics_SetEmployeeStats(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.SetEmployeeStats(5, map[string]int{"active": 3, "vacation": 1, "fired": 1})
	m.SetEmployeeStats(4, map[string]int{"active": 4})

	if got := testutil.ToFloat64(m.EmployeesTotal); got != 4 {
		t.Fatalf("expected total 4, got %v", got)
	}
	if got := testutil.CollectAndCount(m.EmployeesByStatus); got != 1 {
		t.Fatalf("expected stale statuses to be reset, got %d series", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.SetEmployeeStats(2, map[string]int{"active": 2})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `employees_by_status{status="active"} 2`) {
		t.Fatalf("expected employee gauge in exposition, got:\n%s", rec.Body.String())
	}
}
