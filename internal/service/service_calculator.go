package service

import (
	"context"

	"github.com/MKhiriev/hefin/internal/calculator"
	"github.com/MKhiriev/hefin/internal/validators"
	"github.com/MKhiriev/hefin/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MKhiriev/hefin/internal/service"

// calculatorService validates calculator inputs and runs the pure formulas
// of the calculator package inside a tracing span.
type calculatorService struct {
	validator validators.Validator
	tracer    trace.Tracer
}

func NewCalculatorService(validator validators.Validator) CalculatorService {
	return &calculatorService{
		validator: validator,
		tracer:    otel.Tracer(tracerName),
	}
}

func (s *calculatorService) Financing(ctx context.Context, req models.FinancingRequest) (models.FinancingResults, error) {
	ctx, span := s.tracer.Start(ctx, "calculator.Financing")
	defer span.End()

	if err := s.validate(ctx, span, req); err != nil {
		return models.FinancingResults{}, err
	}

	return calculator.Financing(*req.Population, *req.Budget, *req.Coverage), nil
}

func (s *calculatorService) HSA(ctx context.Context, req models.HSARequest) (models.HSAResult, error) {
	ctx, span := s.tracer.Start(ctx, "calculator.HSA",
		trace.WithAttributes(attribute.Int("hsa.years", req.Years), attribute.String("hsa.coverage", string(req.CoverageType))))
	defer span.End()

	if err := s.validate(ctx, span, req); err != nil {
		return models.HSAResult{}, err
	}

	return calculator.HSA(req), nil
}

func (s *calculatorService) Insurance(ctx context.Context, req models.InsuranceRequest) (models.InsuranceComparison, error) {
	ctx, span := s.tracer.Start(ctx, "calculator.Insurance",
		trace.WithAttributes(attribute.Int("insurance.plans", len(req.Plans))))
	defer span.End()

	if err := s.validate(ctx, span, req); err != nil {
		return models.InsuranceComparison{}, err
	}

	return calculator.CompareInsurance(req), nil
}

func (s *calculatorService) Retirement(ctx context.Context, req models.RetirementRequest) (models.RetirementProjection, error) {
	ctx, span := s.tracer.Start(ctx, "calculator.Retirement",
		trace.WithAttributes(attribute.Int("retirement.years", req.RetirementAge-req.CurrentAge)))
	defer span.End()

	if err := s.validate(ctx, span, req); err != nil {
		return models.RetirementProjection{}, err
	}

	return calculator.Retirement(req), nil
}

func (s *calculatorService) validate(ctx context.Context, span trace.Span, req any) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid input")
		return err
	}
	return nil
}
