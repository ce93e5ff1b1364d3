// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hefin/internal/metrics"
	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/internal/validators"
	"github.com/MKhiriev/hefin/models"
	"github.com/go-chi/chi/v5"
)

type recordCreatedResponse struct {
	models.Response
	ID              string             `json:"id"`
	StorageProvider string             `json:"storageProvider"`
	Pointer         models.DataPointer `json:"pointer"`
}

type recordResponse struct {
	models.Response
	models.RecordWithPointer
}

type pointersResponse struct {
	models.Response
	Pointers []models.DataPointer `json:"pointers"`
	Count    int                  `json:"count"`
}

type ledgerStatusResponse struct {
	models.Response
	models.LedgerStatus
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	var req models.RecordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	pointer, err := h.services.RecordService.CreateRecord(r.Context(), req)
	if h.metrics != nil {
		h.metrics.Records.WithLabelValues(metrics.Result(err)).Inc()
	}
	if err != nil {
		if _, ok := validators.AsValidationError(err); ok {
			writeRecordFailure(w, http.StatusBadRequest, validators.MsgRecordFieldsMissing)
			return
		}
		h.writeRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, recordCreatedResponse{
		Response:        models.Response{Success: true},
		ID:              pointer.ID,
		StorageProvider: pointer.StorageProvider,
		Pointer:         pointer,
	}, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.RecordService.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeRecordError(w, r, err)
		return
	}

	utils.WriteJSON(w, recordResponse{Response: models.Response{Success: true}, RecordWithPointer: record}, http.StatusOK)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	pointers, err := h.services.RecordService.ListRecords(r.Context(), r.URL.Query().Get("owner"))
	if err != nil {
		h.writeRecordError(w, r, err)
		return
	}
	if pointers == nil {
		pointers = []models.DataPointer{}
	}

	utils.WriteJSON(w, pointersResponse{
		Response: models.Response{Success: true},
		Pointers: pointers,
		Count:    len(pointers),
	}, http.StatusOK)
}

// ledgerStatus answers 200 for a verified chain and 500 for a broken one.
func (h *Handler) ledgerStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.RecordService.LedgerStatus(r.Context())
	if err != nil {
		h.writeRecordError(w, r, err)
		return
	}

	code := http.StatusOK
	resp := ledgerStatusResponse{Response: models.Response{Success: status.Verified}, LedgerStatus: status}
	if !status.Verified {
		code = http.StatusInternalServerError
		resp.Message = msgIntegrityFailed
	}
	utils.WriteJSON(w, resp, code)
}

// writeRecordError mirrors the message into "error" for record clients.
func (h *Handler) writeRecordError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err, msgRecordsFailed)
	if status >= http.StatusInternalServerError {
		h.logger.Err(err).Str("func", "*Handler.writeRecordError").Str("uri", r.RequestURI).Msg(message)
	}
	writeRecordFailure(w, status, message)
}

func writeRecordFailure(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.Response{Success: false, Message: message, Error: message}, status)
}
