package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrms-labs/payroll-backend-go/internal/config"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/auth"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/bonus"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/payslip"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/actor"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerTestSecret = "test-secret-key-for-jwt"

type stubPayrollService struct {
	lastActor actor.Actor
}

func (s *stubPayrollService) RunMonthlyPayroll(_ context.Context, month, year int, by actor.Actor) (payslip.RunResult, error) {
	s.lastActor = by
	return payslip.RunResult{Month: month, Year: year, Succeeded: 2}, nil
}

func (s *stubPayrollService) RecomputeForEmployee(_ context.Context, employeeID string, month, year int, _ actor.Actor) (payslip.PayslipResponse, error) {
	return payslip.PayslipResponse{EmployeeID: employeeID, PeriodMonth: month, PeriodYear: year}, nil
}

func (s *stubPayrollService) GetPayslip(_ context.Context, id string) (payslip.PayslipResponse, error) {
	if id == "missing" {
		return payslip.PayslipResponse{}, payslip.ErrPayslipNotFound
	}
	return payslip.PayslipResponse{ID: id}, nil
}

func (s *stubPayrollService) GetEmployeePayslip(_ context.Context, employeeID string, month, year int) (payslip.PayslipResponse, error) {
	if employeeID == "ghost" {
		return payslip.PayslipResponse{}, payslip.ErrPayslipNotFound
	}
	return payslip.PayslipResponse{EmployeeID: employeeID, PeriodMonth: month, PeriodYear: year}, nil
}

func (s *stubPayrollService) ListPayslips(_ context.Context, month, year int) ([]payslip.PayslipResponse, error) {
	return []payslip.PayslipResponse{{PeriodMonth: month, PeriodYear: year}}, nil
}

func (s *stubPayrollService) ListMyPayslips(_ context.Context, _ string) ([]payslip.PayslipResponse, error) {
	return []payslip.PayslipResponse{{EmployeeID: "e1"}}, nil
}

type stubBonusService struct{}

func (s *stubBonusService) AddBonus(_ context.Context, req bonus.AddBonusRequest, by actor.Actor) (bonus.BonusResponse, error) {
	return bonus.BonusResponse{
		ID:         "b1",
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Month:      req.Month,
		Year:       req.Year,
		AddedBy:    by.Label(),
	}, nil
}

func (s *stubBonusService) ListBonuses(_ context.Context, employeeID string, _, _ int) ([]bonus.BonusResponse, error) {
	return []bonus.BonusResponse{{ID: "b1", EmployeeID: employeeID}}, nil
}

type stubAuthService struct{}

func (s *stubAuthService) Login(_ context.Context, _ auth.LoginRequest) (auth.LoginResponse, error) {
	return auth.LoginResponse{AccessToken: "token"}, nil
}

func (s *stubAuthService) Me(_ context.Context, userID string) (auth.UserResponse, error) {
	return auth.UserResponse{ID: userID, Email: userID + "@example.com", FullName: "Sam Worker"}, nil
}

func newTestRouter(payrollSvc *stubPayrollService) (http.Handler, jwt.Service) {
	jwtService := jwt.NewJWTService(routerTestSecret, "1h")
	cfg := &config.Config{}
	cfg.App.Env = "test"

	router := NewRouter(
		cfg,
		jwtService,
		NewAuthHandler(&stubAuthService{}),
		NewPayrollHandler(payrollSvc),
		NewBonusHandler(&stubBonusService{}),
	)
	return router, jwtService
}

func bearerToken(t *testing.T, jwtService jwt.Service, userID, fullName string, isAdmin bool) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(userID, userID+"@example.com", fullName, nil, isAdmin)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRunPayrollRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/run", bytes.NewBufferString(`{"month":6,"year":2024}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRunPayrollRequiresAdmin(t *testing.T) {
	router, jwtService := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/run", bytes.NewBufferString(`{"month":6,"year":2024}`))
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u2", "Sam Worker", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRunPayrollAsAdmin(t *testing.T) {
	payrollSvc := &stubPayrollService{}
	router, jwtService := newTestRouter(payrollSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/run", bytes.NewBufferString(`{"month":6,"year":2024}`))
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u1", "Pat Admin", true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Succeeded int `json:"succeeded"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Data.Succeeded)

	// The payslips record who triggered the run.
	assert.Equal(t, "Pat Admin", payrollSvc.lastActor.Label())
}

func TestRunPayrollRejectsBadPeriod(t *testing.T) {
	router, jwtService := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/run", bytes.NewBufferString(`{"month":13,"year":2024}`))
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u1", "Pat Admin", true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListMyPayslipsForAnyAuthenticatedUser(t *testing.T) {
	router, jwtService := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payslips/my", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u2", "Sam Worker", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestListPayslipsRequiresPeriodParams(t *testing.T) {
	router, jwtService := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payslips?month=abc&year=2024", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u1", "Pat Admin", true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEmployeePayslipAsAdmin(t *testing.T) {
	router, jwtService := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/e1/payslip?month=6&year=2024", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u1", "Pat Admin", true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			EmployeeID  string `json:"employee_id"`
			PeriodMonth int    `json:"period_month"`
			PeriodYear  int    `json:"period_year"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "e1", body.Data.EmployeeID)
	assert.Equal(t, 6, body.Data.PeriodMonth)
	assert.Equal(t, 2024, body.Data.PeriodYear)
}

func TestGetEmployeePayslipRequiresAdmin(t *testing.T) {
	router, jwtService := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/e1/payslip?month=6&year=2024", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u2", "Sam Worker", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetEmployeePayslipNotFound(t *testing.T) {
	router, jwtService := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/ghost/payslip?month=6&year=2024", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u1", "Pat Admin", true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeReturnsAuthenticatedUser(t *testing.T) {
	router, jwtService := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u2", "Sam Worker", false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			ID       string `json:"id"`
			FullName string `json:"full_name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u2", body.Data.ID)
	assert.Equal(t, "Sam Worker", body.Data.FullName)
}

func TestMeRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddBonusAsAdmin(t *testing.T) {
	router, jwtService := newTestRouter(&stubPayrollService{})

	payload := `{"employee_id":"e1","amount":"1500","month":6,"year":2024,"description":"Quarterly"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bonuses", bytes.NewBufferString(payload))
	req.Header.Set("Authorization", bearerToken(t, jwtService, "u1", "Pat Admin", true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
