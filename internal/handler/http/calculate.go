package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/hefin/internal/metrics"
	"github.com/MKhiriev/hefin/internal/utils"
)

type calculationResponse[T any] struct {
	Success      bool   `json:"success"`
	Results      T      `json:"results"`
	CalculatedAt string `json:"calculatedAt"`
}

func (h *Handler) calculateFinancing(w http.ResponseWriter, r *http.Request) {
	serveCalculation(h, w, r, "financing", h.services.CalculatorService.Financing)
}

func (h *Handler) calculateHSA(w http.ResponseWriter, r *http.Request) {
	serveCalculation(h, w, r, "hsa", h.services.CalculatorService.HSA)
}

func (h *Handler) calculateInsurance(w http.ResponseWriter, r *http.Request) {
	serveCalculation(h, w, r, "insurance", h.services.CalculatorService.Insurance)
}

func (h *Handler) calculateRetirement(w http.ResponseWriter, r *http.Request) {
	serveCalculation(h, w, r, "retirement", h.services.CalculatorService.Retirement)
}

// serveCalculation decodes a Req, runs calc and writes the results envelope.
func serveCalculation[Req, Res any](h *Handler, w http.ResponseWriter, r *http.Request, name string, calc func(context.Context, Req) (Res, error)) {
	var req Req
	if !h.decodeJSON(w, r, &req) {
		return
	}

	results, err := calc(r.Context(), req)
	if h.metrics != nil {
		h.metrics.Calculations.WithLabelValues(name, metrics.Result(err)).Inc()
	}
	if err != nil {
		h.writeError(w, r, err, msgCalculationFailed)
		return
	}

	utils.WriteJSON(w, calculationResponse[Res]{
		Success:      true,
		Results:      results,
		CalculatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}, http.StatusOK)
}
