package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/metrics"
	"github.com/MKhiriev/hefin/internal/service"
	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Function-field service mocks. A nil field returns zero values.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	getProfileFn   func(ctx context.Context, userID int64) (models.UserProfile, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerUserFn == nil {
		return models.User{}, nil
	}
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, nil
	}
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		if tokenString == validToken {
			return models.Token{UserID: 7, Email: "jane@example.com"}, nil
		}
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	if m.getProfileFn == nil {
		return models.UserProfile{ID: userID}, nil
	}
	return m.getProfileFn(ctx, userID)
}

type mockContactService struct {
	submitContactFn      func(ctx context.Context, req models.ContactRequest, ip string) (models.Contact, error)
	submitConsultationFn func(ctx context.Context, req models.ConsultationRequest, ip string) (models.Contact, error)
	listContactsFn       func(ctx context.Context) ([]models.Contact, error)
}

func (m *mockContactService) SubmitContact(ctx context.Context, req models.ContactRequest, ip string) (models.Contact, error) {
	if m.submitContactFn == nil {
		return models.Contact{}, nil
	}
	return m.submitContactFn(ctx, req, ip)
}

func (m *mockContactService) SubmitConsultation(ctx context.Context, req models.ConsultationRequest, ip string) (models.Contact, error) {
	if m.submitConsultationFn == nil {
		return models.Contact{}, nil
	}
	return m.submitConsultationFn(ctx, req, ip)
}

func (m *mockContactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	if m.listContactsFn == nil {
		return nil, nil
	}
	return m.listContactsFn(ctx)
}

type mockCalculatorService struct {
	financingFn  func(ctx context.Context, req models.FinancingRequest) (models.FinancingResults, error)
	hsaFn        func(ctx context.Context, req models.HSARequest) (models.HSAResult, error)
	insuranceFn  func(ctx context.Context, req models.InsuranceRequest) (models.InsuranceComparison, error)
	retirementFn func(ctx context.Context, req models.RetirementRequest) (models.RetirementProjection, error)
}

func (m *mockCalculatorService) Financing(ctx context.Context, req models.FinancingRequest) (models.FinancingResults, error) {
	if m.financingFn == nil {
		return models.FinancingResults{}, nil
	}
	return m.financingFn(ctx, req)
}

func (m *mockCalculatorService) HSA(ctx context.Context, req models.HSARequest) (models.HSAResult, error) {
	if m.hsaFn == nil {
		return models.HSAResult{}, nil
	}
	return m.hsaFn(ctx, req)
}

func (m *mockCalculatorService) Insurance(ctx context.Context, req models.InsuranceRequest) (models.InsuranceComparison, error) {
	if m.insuranceFn == nil {
		return models.InsuranceComparison{}, nil
	}
	return m.insuranceFn(ctx, req)
}

func (m *mockCalculatorService) Retirement(ctx context.Context, req models.RetirementRequest) (models.RetirementProjection, error) {
	if m.retirementFn == nil {
		return models.RetirementProjection{}, nil
	}
	return m.retirementFn(ctx, req)
}

type mockPatientService struct {
	createFn func(ctx context.Context, patient models.Patient) (models.Patient, error)
	getFn    func(ctx context.Context, id string) (models.Patient, error)
	listFn   func(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error)
	updateFn func(ctx context.Context, id string, patient models.Patient) (models.Patient, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockPatientService) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if m.createFn == nil {
		return patient, nil
	}
	return m.createFn(ctx, patient)
}

func (m *mockPatientService) GetPatient(ctx context.Context, id string) (models.Patient, error) {
	if m.getFn == nil {
		return models.Patient{ID: id}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockPatientService) ListPatients(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, filter)
}

func (m *mockPatientService) UpdatePatient(ctx context.Context, id string, patient models.Patient) (models.Patient, error) {
	if m.updateFn == nil {
		patient.ID = id
		return patient, nil
	}
	return m.updateFn(ctx, id, patient)
}

func (m *mockPatientService) DeletePatient(ctx context.Context, id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockRecordService struct {
	createFn       func(ctx context.Context, req models.RecordRequest) (models.DataPointer, error)
	getFn          func(ctx context.Context, id string) (models.RecordWithPointer, error)
	listFn         func(ctx context.Context, owner string) ([]models.DataPointer, error)
	ledgerStatusFn func(ctx context.Context) (models.LedgerStatus, error)
	verifyFn       func(ctx context.Context) error
}

func (m *mockRecordService) CreateRecord(ctx context.Context, req models.RecordRequest) (models.DataPointer, error) {
	if m.createFn == nil {
		return models.DataPointer{}, nil
	}
	return m.createFn(ctx, req)
}

func (m *mockRecordService) GetRecord(ctx context.Context, id string) (models.RecordWithPointer, error) {
	if m.getFn == nil {
		return models.RecordWithPointer{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockRecordService) ListRecords(ctx context.Context, owner string) ([]models.DataPointer, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, owner)
}

func (m *mockRecordService) LedgerStatus(ctx context.Context) (models.LedgerStatus, error) {
	if m.ledgerStatusFn == nil {
		return models.LedgerStatus{Status: "ok", Verified: true}, nil
	}
	return m.ledgerStatusFn(ctx)
}

func (m *mockRecordService) VerifyLedger(ctx context.Context) error {
	if m.verifyFn == nil {
		return nil
	}
	return m.verifyFn(ctx)
}

type mockAppInfoService struct {
	version string
	health  models.HealthStatus
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Health(_ context.Context) models.HealthStatus {
	return m.health
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const validToken = "valid-token"

// newTestServices fills every service with a mock; callers replace the ones
// they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:       &mockAuthService{},
		ContactService:    &mockContactService{},
		CalculatorService: &mockCalculatorService{},
		PatientService:    &mockPatientService{},
		RecordService:     &mockRecordService{},
		AppInfoService:    &mockAppInfoService{version: "test-version"},
	}
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Environment: config.EnvTest,
			Version:     "test-version",
		},
		Server: config.Server{
			RateLimitRPS: -1,
		},
	}
}

func newTestHandler(t *testing.T, svcs *service.Services, opts ...func(*config.StructuredConfig)) *Handler {
	t.Helper()

	cfg := testConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewHandler(svcs, cfg, metrics.New(), logger.Nop())
}

// serve runs a request through the full router.
func serve(t *testing.T, h *Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.True(t, len(headers)%2 == 0, "headers must be key/value pairs")

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer() []string {
	return []string{"Authorization", "Bearer " + validToken}
}

// decodeBody decodes a JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func withUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}

func httptestServe(h http.Handler, method, target string) *httptest.ResponseRecorder {
	return serveRouter(h, method, target, "")
}

// serveRouter sends a JSON request to an already built router.
func serveRouter(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
