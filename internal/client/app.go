package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/hefin/internal/adapter"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	server   adapter.ServerAdapter
	out      io.Writer
	build    models.BuildInfo
	commands map[string]command

	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, out io.Writer, build models.BuildInfo, logger *logger.Logger) *App {
	a := &App{server: server, out: out, build: build, logger: logger}
	a.commands = map[string]command{
		"health":    {"show server health", a.health},
		"version":   {"show server version", a.version},
		"contact":   {"submit a contact form", a.contact},
		"calculate": {"run the health financing calculator", a.calculate},
		"hsa":       {"project a health savings account", a.hsa},
		"login":     {"sign in and print the session token", a.login},
		"about":     {"show client build information", a.about},
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrNoCommand
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.usage()
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Strs("args", args[1:]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

func (a *App) usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: client <command> [flags]")
	fmt.Fprintln(a.out)
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-10s %s\n", name, a.commands[name].usage)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// ── commands ─────────────────────────────────────────────────────────────────

func (a *App) health(ctx context.Context, args []string) error {
	if err := a.flagSet("health").Parse(args); err != nil {
		return err
	}

	status, err := a.server.Health(ctx)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	fmt.Fprint(a.out, renderTable("Server health", []row{
		{"status", strconv.FormatBool(status.Success)},
		{"message", status.Message},
		{"uptime", fmt.Sprintf("%.0fs", status.Uptime)},
		{"environment", valueOrNA(status.Environment)},
		{"version", valueOrNA(status.Version)},
		{"timestamp", status.Timestamp},
	}))
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := a.flagSet("version").Parse(args); err != nil {
		return err
	}

	v, err := a.server.Version(ctx)
	if err != nil {
		return fmt.Errorf("server version: %w", err)
	}

	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) contact(ctx context.Context, args []string) error {
	var req models.ContactRequest

	fs := a.flagSet("contact")
	fs.StringVar(&req.FirstName, "first-name", "", "first name (required)")
	fs.StringVar(&req.LastName, "last-name", "", "last name (required)")
	fs.StringVar(&req.Email, "email", "", "email address (required)")
	fs.StringVar(&req.Organization, "organization", "", "organization")
	fs.StringVar(&req.Message, "message", "", "message, at least 10 characters (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := a.server.SubmitContact(ctx, req)
	if err != nil {
		return fmt.Errorf("submit contact: %w", err)
	}

	fmt.Fprint(a.out, renderTable("Contact form submitted", []row{{"id", id}}))
	return nil
}

func (a *App) calculate(ctx context.Context, args []string) error {
	fs := a.flagSet("calculate")
	population := fs.Float64("population", 0, "population size (required)")
	budget := fs.Float64("budget", 0, "budget in millions (required)")
	coverage := fs.Float64("coverage", 0, "current coverage percentage (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(fs, "population", "budget", "coverage"); err != nil {
		return err
	}

	res, err := a.server.Financing(ctx, models.FinancingRequest{Population: population, Budget: budget, Coverage: coverage})
	if err != nil {
		return fmt.Errorf("financing calculation: %w", err)
	}

	fmt.Fprint(a.out, renderTable("Health financing optimization", []row{
		{"cost savings", "$" + strconv.FormatInt(res.CostSavings, 10)},
		{"coverage improvement", strconv.FormatInt(res.CoverageImprovement, 10) + "%"},
		{"additional people", strconv.FormatInt(res.AdditionalPeople, 10)},
		{"administrative efficiency", strconv.FormatInt(res.EfficiencyMetrics.AdministrativeEfficiency, 10) + "%"},
		{"resource allocation", strconv.FormatInt(res.EfficiencyMetrics.ResourceAllocation, 10) + "%"},
		{"provider performance", strconv.FormatInt(res.EfficiencyMetrics.ProviderPerformance, 10) + "%"},
	}))
	return nil
}

func (a *App) hsa(ctx context.Context, args []string) error {
	var (
		req      models.HSARequest
		coverage string
	)

	fs := a.flagSet("hsa")
	fs.Float64Var(&req.AnnualContribution, "contribution", 0, "annual contribution")
	fs.IntVar(&req.Years, "years", 0, "years to project (required)")
	fs.Float64Var(&req.AnnualReturn, "return", 0, "expected annual return, percent")
	fs.Float64Var(&req.TaxRate, "tax-rate", 0, "marginal tax rate, percent")
	fs.Float64Var(&req.InitialBalance, "initial", 0, "initial balance")
	fs.StringVar(&coverage, "coverage", string(models.HSACoverageSelf), "coverage type: self or family")
	fs.IntVar(&req.Age, "age", 0, "current age")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(fs, "years"); err != nil {
		return err
	}
	req.CoverageType = models.HSACoverage(strings.ToLower(coverage))

	res, err := a.server.HSA(ctx, req)
	if err != nil {
		return fmt.Errorf("hsa projection: %w", err)
	}

	rows := []row{
		{"future value", money(res.FutureValue)},
		{"total contributions", money(res.TotalContributions)},
		{"investment growth", money(res.InvestmentGrowth)},
		{"tax savings", money(res.TaxSavings)},
		{"annual limit", money(res.AnnualLimit)},
	}
	if res.OverLimit {
		rows = append(rows, row{"warning", "contribution exceeds the annual limit"})
	}
	fmt.Fprint(a.out, renderTable("HSA projection", rows))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest

	fs := a.flagSet("login")
	fs.StringVar(&req.Email, "email", "", "account email (required)")
	fs.StringVar(&req.Password, "password", "", "account password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(fs, "email", "password"); err != nil {
		return err
	}

	res, err := a.server.Login(ctx, req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	fmt.Fprint(a.out, renderTable("Welcome back, "+res.User.Name+"!", []row{
		{"id", strconv.FormatInt(res.User.ID, 10)},
		{"email", res.User.Email},
		{"initials", res.User.Initials},
		{"token", res.Token},
	}))
	return nil
}

func (a *App) about(_ context.Context, args []string) error {
	if err := a.flagSet("about").Parse(args); err != nil {
		return err
	}

	fmt.Fprint(a.out, renderTable("HEFIN client", []row{
		{"version", valueOrNA(a.build.Version)},
		{"date", valueOrNA(a.build.Date)},
		{"commit", valueOrNA(a.build.Commit)},
	}))
	return nil
}

// requireFlags fails unless every named flag was set explicitly.
func requireFlags(fs *flag.FlagSet, names ...string) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var errs error
	for _, name := range names {
		if !set[name] {
			errs = errors.Join(errs, fmt.Errorf("%w: -%s", ErrMissingFlag, name))
		}
	}
	return errs
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}
