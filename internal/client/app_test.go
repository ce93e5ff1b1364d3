package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/hefin/internal/adapter"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdapter is a function-field ServerAdapter; unset functions fail the call.
type fakeAdapter struct {
	token         string
	HealthFunc    func(ctx context.Context) (models.HealthStatus, error)
	VersionFunc   func(ctx context.Context) (string, error)
	ContactFunc   func(ctx context.Context, req models.ContactRequest) (string, error)
	FinancingFunc func(ctx context.Context, req models.FinancingRequest) (models.FinancingResults, error)
	HSAFunc       func(ctx context.Context, req models.HSARequest) (models.HSAResult, error)
	LoginFunc     func(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	MeFunc        func(ctx context.Context) (models.UserProfile, error)
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeAdapter) SetToken(token string) { f.token = token }
func (f *fakeAdapter) Token() string         { return f.token }

func (f *fakeAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	if f.HealthFunc == nil {
		return models.HealthStatus{}, errNotStubbed
	}
	return f.HealthFunc(ctx)
}

func (f *fakeAdapter) Version(ctx context.Context) (string, error) {
	if f.VersionFunc == nil {
		return "", errNotStubbed
	}
	return f.VersionFunc(ctx)
}

func (f *fakeAdapter) SubmitContact(ctx context.Context, req models.ContactRequest) (string, error) {
	if f.ContactFunc == nil {
		return "", errNotStubbed
	}
	return f.ContactFunc(ctx, req)
}

func (f *fakeAdapter) Financing(ctx context.Context, req models.FinancingRequest) (models.FinancingResults, error) {
	if f.FinancingFunc == nil {
		return models.FinancingResults{}, errNotStubbed
	}
	return f.FinancingFunc(ctx, req)
}

func (f *fakeAdapter) HSA(ctx context.Context, req models.HSARequest) (models.HSAResult, error) {
	if f.HSAFunc == nil {
		return models.HSAResult{}, errNotStubbed
	}
	return f.HSAFunc(ctx, req)
}

func (f *fakeAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	if f.LoginFunc == nil {
		return models.AuthResult{}, errNotStubbed
	}
	return f.LoginFunc(ctx, req)
}

func (f *fakeAdapter) Me(ctx context.Context) (models.UserProfile, error) {
	if f.MeFunc == nil {
		return models.UserProfile{}, errNotStubbed
	}
	return f.MeFunc(ctx)
}

var _ adapter.ServerAdapter = (*fakeAdapter)(nil)

func newTestApp(server *fakeAdapter) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return NewApp(server, &out, models.NewBuildInfo("v0.3.0", "", ""), logger.Nop()), &out
}

// ── dispatch ─────────────────────────────────────────────────────────────────

func TestApp_Run_NoCommand(t *testing.T) {
	app, out := newTestApp(&fakeAdapter{})

	err := app.Run(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, out.String(), "usage: client <command>")
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	app, out := newTestApp(&fakeAdapter{})

	err := app.Run(context.Background(), []string{"teleport"})

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"teleport"`)
	assert.Contains(t, out.String(), "hsa")
}

func TestApp_Run_Help(t *testing.T) {
	app, out := newTestApp(&fakeAdapter{})

	require.NoError(t, app.Run(context.Background(), []string{"help"}))
	for _, name := range []string{"about", "calculate", "contact", "health", "hsa", "login", "version"} {
		assert.Contains(t, out.String(), name)
	}
}

// ── commands ─────────────────────────────────────────────────────────────────

func TestApp_Health(t *testing.T) {
	app, out := newTestApp(&fakeAdapter{
		HealthFunc: func(context.Context) (models.HealthStatus, error) {
			return models.HealthStatus{Success: true, Message: "HEFIN Backend is running", Uptime: 42.4, Environment: "production"}, nil
		},
	})

	require.NoError(t, app.Run(context.Background(), []string{"health"}))

	assert.Contains(t, out.String(), "HEFIN Backend is running")
	assert.Contains(t, out.String(), "42s")
	assert.Contains(t, out.String(), "production")
	assert.Contains(t, out.String(), "N/A")
}

func TestApp_Health_ServerError(t *testing.T) {
	app, _ := newTestApp(&fakeAdapter{
		HealthFunc: func(context.Context) (models.HealthStatus, error) {
			return models.HealthStatus{}, adapter.ErrInternalServerError
		},
	})

	err := app.Run(context.Background(), []string{"health"})
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestApp_Version(t *testing.T) {
	app, out := newTestApp(&fakeAdapter{
		VersionFunc: func(context.Context) (string, error) { return "1.0.0", nil },
	})

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "1.0.0\n", out.String())
}

func TestApp_Contact(t *testing.T) {
	var got models.ContactRequest
	app, out := newTestApp(&fakeAdapter{
		ContactFunc: func(_ context.Context, req models.ContactRequest) (string, error) {
			got = req
			return "c-42", nil
		},
	})

	err := app.Run(context.Background(), []string{"contact",
		"-first-name", "Jane", "-last-name", "Doe", "-email", "jane@example.com",
		"-organization", "Acme Health", "-message", "Please call me back",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ContactRequest{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Organization: "Acme Health", Message: "Please call me back",
	}, got)
	assert.Contains(t, out.String(), "c-42")
}

func TestApp_Contact_ValidationError(t *testing.T) {
	app, _ := newTestApp(&fakeAdapter{
		ContactFunc: func(context.Context, models.ContactRequest) (string, error) {
			return "", adapter.ErrBadRequest
		},
	})

	err := app.Run(context.Background(), []string{"contact", "-email", "nope"})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestApp_Calculate(t *testing.T) {
	var got models.FinancingRequest
	app, out := newTestApp(&fakeAdapter{
		FinancingFunc: func(_ context.Context, req models.FinancingRequest) (models.FinancingResults, error) {
			got = req
			return models.FinancingResults{
				CostSavings:         750000,
				CoverageImprovement: 8,
				AdditionalPeople:    8000,
				EfficiencyMetrics:   models.EfficiencyMetrics{AdministrativeEfficiency: 77},
			}, nil
		},
	})

	err := app.Run(context.Background(), []string{"calculate", "-population", "100000", "-budget", "50", "-coverage", "80"})

	require.NoError(t, err)
	require.NotNil(t, got.Population)
	assert.Equal(t, 100000.0, *got.Population)
	assert.Equal(t, 50.0, *got.Budget)
	assert.Equal(t, 80.0, *got.Coverage)
	assert.Contains(t, out.String(), "$750000")
	assert.Contains(t, out.String(), "8000")
	assert.Contains(t, out.String(), "77%")
}

func TestApp_Calculate_MissingFlags(t *testing.T) {
	app, _ := newTestApp(&fakeAdapter{})

	err := app.Run(context.Background(), []string{"calculate", "-budget", "50"})

	require.ErrorIs(t, err, ErrMissingFlag)
	assert.Contains(t, err.Error(), "-population")
	assert.Contains(t, err.Error(), "-coverage")
	assert.NotContains(t, err.Error(), "-budget")
}

func TestApp_Calculate_BadFlagValue(t *testing.T) {
	app, _ := newTestApp(&fakeAdapter{})

	err := app.Run(context.Background(), []string{"calculate", "-population", "many"})
	assert.Error(t, err)
}

func TestApp_HSA(t *testing.T) {
	var got models.HSARequest
	app, out := newTestApp(&fakeAdapter{
		HSAFunc: func(_ context.Context, req models.HSARequest) (models.HSAResult, error) {
			got = req
			return models.HSAResult{FutureValue: 12345.678, AnnualLimit: 8300, OverLimit: true}, nil
		},
	})

	err := app.Run(context.Background(), []string{"hsa", "-contribution", "9000", "-years", "5", "-coverage", "FAMILY"})

	require.NoError(t, err)
	assert.Equal(t, 9000.0, got.AnnualContribution)
	assert.Equal(t, 5, got.Years)
	assert.Equal(t, models.HSACoverageFamily, got.CoverageType)
	assert.Contains(t, out.String(), "$12345.68")
	assert.Contains(t, out.String(), "exceeds the annual limit")
}

func TestApp_HSA_DefaultCoverage(t *testing.T) {
	var got models.HSARequest
	app, out := newTestApp(&fakeAdapter{
		HSAFunc: func(_ context.Context, req models.HSARequest) (models.HSAResult, error) {
			got = req
			return models.HSAResult{}, nil
		},
	})

	require.NoError(t, app.Run(context.Background(), []string{"hsa", "-years", "1"}))
	assert.Equal(t, models.HSACoverageSelf, got.CoverageType)
	assert.NotContains(t, out.String(), "warning")
}

func TestApp_Login(t *testing.T) {
	app, out := newTestApp(&fakeAdapter{
		LoginFunc: func(_ context.Context, req models.LoginRequest) (models.AuthResult, error) {
			assert.Equal(t, "jane@example.com", req.Email)
			return models.AuthResult{
				Token: "signed-token",
				User:  models.UserProfile{ID: 7, Name: "Jane Doe", Email: "jane@example.com", Initials: "JD"},
			}, nil
		},
	})

	err := app.Run(context.Background(), []string{"login", "-email", "jane@example.com", "-password", "Secret123"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome back, Jane Doe!")
	assert.Contains(t, out.String(), "signed-token")
}

func TestApp_Login_MissingPassword(t *testing.T) {
	app, _ := newTestApp(&fakeAdapter{})

	err := app.Run(context.Background(), []string{"login", "-email", "jane@example.com"})
	assert.ErrorIs(t, err, ErrMissingFlag)
}

func TestApp_Login_Unauthorized(t *testing.T) {
	app, _ := newTestApp(&fakeAdapter{
		LoginFunc: func(context.Context, models.LoginRequest) (models.AuthResult, error) {
			return models.AuthResult{}, adapter.ErrUnauthorized
		},
	})

	err := app.Run(context.Background(), []string{"login", "-email", "a@b.co", "-password", "x"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestApp_About(t *testing.T) {
	app, out := newTestApp(&fakeAdapter{})

	require.NoError(t, app.Run(context.Background(), []string{"about"}))

	assert.Contains(t, out.String(), "v0.3.0")
	assert.Contains(t, out.String(), "N/A")
}

// ── rendering ────────────────────────────────────────────────────────────────

func TestRenderTable(t *testing.T) {
	out := renderTable("Title", []row{{"a", "1"}, {"longer", "2"}})

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "longer")
}

func TestRenderError(t *testing.T) {
	assert.Contains(t, RenderError(errors.New("boom")), "error: boom")
}
