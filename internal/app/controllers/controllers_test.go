package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/personnel/internal/app/models"
	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/pkg/apperrors"
	"github.com/yigit/personnel/internal/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const employeeID = "0b6f7a52-3c1d-4e8f-9a2b-5c6d7e8f9a0b"

type stubEmployeeService struct {
	err        error
	employee   *models.Employee
	employees  []models.Employee
	lastSearch dto.SearchEmployeesRequest
	lastStatus string
}

func (s *stubEmployeeService) CreateEmployee(_ context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Employee{ID: employeeID, FullName: req.FullName, Status: models.StatusActive}, nil
}

func (s *stubEmployeeService) UpdateEmployee(_ context.Context, id string, req dto.UpdateEmployeeRequest) (*models.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Employee{ID: id, FullName: req.FullName}, nil
}

func (s *stubEmployeeService) ChangeStatus(_ context.Context, id string, status string) (*models.Employee, error) {
	s.lastStatus = status
	if s.err != nil {
		return nil, s.err
	}
	return &models.Employee{ID: id, Status: models.EmployeeStatus(status)}, nil
}

func (s *stubEmployeeService) GetEmployeeByID(context.Context, string) (*models.Employee, error) {
	return s.employee, s.err
}

func (s *stubEmployeeService) GetEmployeesByDepartment(context.Context, string) ([]models.Employee, error) {
	return s.employees, s.err
}

func (s *stubEmployeeService) SearchEmployees(_ context.Context, req dto.SearchEmployeesRequest) ([]models.Employee, error) {
	s.lastSearch = req
	return s.employees, s.err
}

func (s *stubEmployeeService) ListPositions(context.Context) ([]string, error) {
	return []string{"Аналитик", "Программист"}, s.err
}

func (s *stubEmployeeService) GetStats(context.Context) (*models.EmployeeStats, error) {
	return &models.EmployeeStats{
		Total:        1,
		ByStatus:     map[string]int{"active": 1},
		ByDepartment: map[string]int{"IT отдел": 1},
	}, s.err
}

type stubDepartmentService struct {
	err error
}

func (s *stubDepartmentService) GetAllDepartments(context.Context) ([]models.Department, error) {
	return []models.Department{{ID: "d1", Name: "IT отдел"}}, s.err
}

func (s *stubDepartmentService) GetDepartmentByID(_ context.Context, id string) (*models.Department, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Department{ID: id, Name: "IT отдел"}, nil
}

func (s *stubDepartmentService) CreateDepartment(_ context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Department{ID: "d2", Name: req.Name}, nil
}

func (s *stubDepartmentService) DeleteDepartment(context.Context, string) error {
	return s.err
}

func newRouter(es *stubEmployeeService, ds *stubDepartmentService) *gin.Engine {
	r := gin.New()
	ec := NewEmployeeController(es)
	dc := NewDepartmentController(ds)
	hc := NewHealthController("personnel-api", helpers.FixedClock{At: time.Date(2025, 4, 23, 12, 1, 5, 0, time.UTC)})

	api := r.Group("/api")
	api.GET("/health", hc.Health)
	api.GET("/departments", dc.GetAllDepartments)
	api.GET("/departments/:id", dc.GetDepartmentByID)
	api.POST("/departments", dc.CreateDepartment)
	api.DELETE("/departments/:id", dc.DeleteDepartment)
	api.GET("/employees/department/:departmentId", ec.GetEmployeesByDepartment)
	api.POST("/employees/search", ec.SearchEmployees)
	api.POST("/employees", ec.CreateEmployee)
	api.GET("/employees/:id", ec.GetEmployeeByID)
	api.PUT("/employees/:id", ec.UpdateEmployee)
	api.PATCH("/employees/:id/status", ec.ChangeStatus)
	api.GET("/positions", ec.ListPositions)
	api.GET("/stats", ec.GetStats)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid JSON %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	r := newRouter(&stubEmployeeService{}, &stubDepartmentService{})
	code, env := do(t, r, http.MethodPost, "/api/employees", `{"fullName":"Иванов Иван Иванович","gender":"male","age":35}`)
	if code != http.StatusCreated || !env.Success || env.Message != "Employee created" {
		t.Fatalf("unexpected response %d %+v", code, env)
	}

	var e models.Employee
	if err := json.Unmarshal(env.Data, &e); err != nil || e.ID != employeeID || e.Status != models.StatusActive {
		t.Fatalf("unexpected data %s", env.Data)
	}
}

func TestCreateEmployee_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		body   string
		status int
		msg    string
	}{
		{"missing fields", apperrors.ErrMissingRequiredFields, `{}`, http.StatusBadRequest, "All fields are required"},
		{"duplicate passport", apperrors.ErrPassportAlreadyExists, `{}`, http.StatusBadRequest, "Employee with this passport already exists"},
		{"storage failure", errors.New("dial tcp: refused"), `{}`, http.StatusInternalServerError, "Internal server error"},
		{"malformed body", nil, `{"age":`, http.StatusBadRequest, "Invalid request body"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newRouter(&stubEmployeeService{err: tt.err}, &stubDepartmentService{})
			code, env := do(t, r, http.MethodPost, "/api/employees", tt.body)
			if code != tt.status || env.Success || env.Error != tt.msg {
				t.Fatalf("got %d %+v, want %d %q", code, env, tt.status, tt.msg)
			}
		})
	}
}

func TestChangeStatus(t *testing.T) {
	t.Parallel()

	messages := map[string]string{
		"active":   "Employee activated",
		"vacation": "Employee sent on vacation",
		"fired":    "Employee fired",
	}
	for status, want := range messages {
		es := &stubEmployeeService{}
		r := newRouter(es, &stubDepartmentService{})

		code, env := do(t, r, http.MethodPatch, "/api/employees/"+employeeID+"/status", `{"status":"`+status+`"}`)
		if code != http.StatusOK || env.Message != want {
			t.Fatalf("%s: got %d %+v", status, code, env)
		}
		if es.lastStatus != status {
			t.Fatalf("status not forwarded: %q", es.lastStatus)
		}
	}

	r := newRouter(&stubEmployeeService{err: apperrors.ErrEmployeeNotFound}, &stubDepartmentService{})
	code, env := do(t, r, http.MethodPatch, "/api/employees/"+employeeID+"/status", `{"status":"fired"}`)
	if code != http.StatusNotFound || env.Error != "Employee not found" {
		t.Fatalf("got %d %+v", code, env)
	}
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	t.Parallel()

	r := newRouter(&stubEmployeeService{err: apperrors.ErrEmployeeNotFound}, &stubDepartmentService{})
	code, env := do(t, r, http.MethodPut, "/api/employees/"+employeeID, `{"fullName":"x"}`)
	if code != http.StatusNotFound || env.Success {
		t.Fatalf("got %d %+v", code, env)
	}

	r = newRouter(&stubEmployeeService{}, &stubDepartmentService{})
	code, env = do(t, r, http.MethodPut, "/api/employees/"+employeeID, `{"fullName":"x"}`)
	if code != http.StatusOK || env.Message != "Employee updated" {
		t.Fatalf("got %d %+v", code, env)
	}
}

func TestSearchEmployees(t *testing.T) {
	t.Parallel()

	es := &stubEmployeeService{employees: []models.Employee{{FullName: "Петрова Анна Сергеевна", Age: 28}}}
	r := newRouter(es, &stubDepartmentService{})

	code, env := do(t, r, http.MethodPost, "/api/employees/search", `{"gender":"female","ageFrom":25,"ageTo":35}`)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("got %d %+v", code, env)
	}
	if es.lastSearch.Gender != "female" || *es.lastSearch.AgeFrom != 25 || *es.lastSearch.AgeTo != 35 || es.lastSearch.FullName != "" {
		t.Fatalf("criteria not bound: %+v", es.lastSearch)
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(env.Data, &list); err != nil || len(list) != 1 || list[0]["full_name"] != "Петрова Анна Сергеевна" {
		t.Fatalf("unexpected data %s", env.Data)
	}
}

func TestSearchEmployees_EmptyBodyListsEveryone(t *testing.T) {
	t.Parallel()

	es := &stubEmployeeService{employees: []models.Employee{{FullName: "Иванов Иван Иванович"}, {FullName: "Петрова Анна Сергеевна"}}}
	r := newRouter(es, &stubDepartmentService{})

	code, env := do(t, r, http.MethodPost, "/api/employees/search", "")
	if code != http.StatusOK || !env.Success {
		t.Fatalf("empty body: got %d %+v", code, env)
	}
	if es.lastSearch != (dto.SearchEmployeesRequest{}) {
		t.Fatalf("empty body must mean no filters, got %+v", es.lastSearch)
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(env.Data, &list); err != nil || len(list) != 2 {
		t.Fatalf("unexpected data %s", env.Data)
	}

	code, env = do(t, r, http.MethodPost, "/api/employees/search", `{"ageTo":`)
	if code != http.StatusBadRequest || env.Error != "Invalid request body" {
		t.Fatalf("malformed body: got %d %+v", code, env)
	}
}

func TestSearchEmployees_ZeroAgeIsABound(t *testing.T) {
	t.Parallel()

	es := &stubEmployeeService{employees: []models.Employee{}}
	r := newRouter(es, &stubDepartmentService{})

	code, env := do(t, r, http.MethodPost, "/api/employees/search", `{"ageTo":0}`)
	if code != http.StatusOK || string(env.Data) != "[]" {
		t.Fatalf("got %d %s", code, env.Data)
	}
	if es.lastSearch.AgeTo == nil || *es.lastSearch.AgeTo != 0 || es.lastSearch.AgeFrom != nil {
		t.Fatalf("ageTo 0 must reach the service as a bound: %+v", es.lastSearch)
	}
}

func TestListEndpoints(t *testing.T) {
	t.Parallel()

	r := newRouter(&stubEmployeeService{employees: []models.Employee{}}, &stubDepartmentService{})

	code, env := do(t, r, http.MethodGet, "/api/employees/department/unknown", "")
	if code != http.StatusOK || string(env.Data) != "[]" {
		t.Fatalf("by department: got %d %s", code, env.Data)
	}

	code, env = do(t, r, http.MethodGet, "/api/positions", "")
	if code != http.StatusOK || string(env.Data) != `["Аналитик","Программист"]` {
		t.Fatalf("positions: got %d %s", code, env.Data)
	}

	code, env = do(t, r, http.MethodGet, "/api/departments", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), "IT отдел") {
		t.Fatalf("departments: got %d %s", code, env.Data)
	}

	code, env = do(t, r, http.MethodGet, "/api/stats", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"by_status":{"active":1}`) ||
		!strings.Contains(string(env.Data), `"by_department":{"IT отдел":1}`) {
		t.Fatalf("stats: got %d %s", code, env.Data)
	}

	code, env = do(t, r, http.MethodGet, "/api/health", "")
	if code != http.StatusOK || string(env.Data) != `{"status":"ok","timestamp":"2025-04-23T12:01:05Z","service":"personnel-api"}` {
		t.Fatalf("health: got %d %s", code, env.Data)
	}
}

func TestGetEmployeeByID(t *testing.T) {
	t.Parallel()

	r := newRouter(&stubEmployeeService{employee: &models.Employee{ID: employeeID}}, &stubDepartmentService{})
	code, env := do(t, r, http.MethodGet, "/api/employees/"+employeeID, "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), employeeID) {
		t.Fatalf("got %d %+v", code, env)
	}

	r = newRouter(&stubEmployeeService{err: apperrors.ErrEmployeeNotFound}, &stubDepartmentService{})
	if code, _ := do(t, r, http.MethodGet, "/api/employees/nope", ""); code != http.StatusNotFound {
		t.Fatalf("got %d", code)
	}
}

func TestDepartmentEndpoints(t *testing.T) {
	t.Parallel()

	r := newRouter(&stubEmployeeService{}, &stubDepartmentService{})
	code, env := do(t, r, http.MethodPost, "/api/departments", `{"name":"Юридический отдел"}`)
	if code != http.StatusCreated || env.Message != "Department created" {
		t.Fatalf("create: got %d %+v", code, env)
	}

	code, env = do(t, r, http.MethodDelete, "/api/departments/d2", "")
	if code != http.StatusOK || env.Message != "Department deleted" || env.Data != nil {
		t.Fatalf("delete: got %d %+v", code, env)
	}

	r = newRouter(&stubEmployeeService{}, &stubDepartmentService{err: apperrors.ErrDepartmentHasEmployees})
	code, env = do(t, r, http.MethodDelete, "/api/departments/d1", "")
	if code != http.StatusBadRequest || env.Error != "Department has employees and cannot be deleted" {
		t.Fatalf("delete conflict: got %d %+v", code, env)
	}

	r = newRouter(&stubEmployeeService{}, &stubDepartmentService{err: apperrors.ErrDepartmentNotFound})
	if code, _ := do(t, r, http.MethodGet, "/api/departments/x", ""); code != http.StatusNotFound {
		t.Fatalf("get missing: got %d", code)
	}
}
