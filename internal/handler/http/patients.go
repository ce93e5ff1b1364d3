package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/models"
	"github.com/go-chi/chi/v5"
)

type patientResponse struct {
	models.Response
	Patient models.Patient `json:"patient"`
}

type patientsResponse struct {
	models.Response
	Patients []models.Patient `json:"patients"`
	Count    int              `json:"count"`
}

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	var patient models.Patient
	if !h.decodeJSON(w, r, &patient) {
		return
	}

	created, err := h.services.PatientService.CreatePatient(r.Context(), patient)
	if err != nil {
		h.writeError(w, r, err, msgPatientsFailed)
		return
	}

	utils.WriteJSON(w, patientResponse{Response: models.Response{Success: true}, Patient: created}, http.StatusCreated)
}

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.PatientFilter{Search: query.Get("search")}
	for name, dst := range map[string]*uint64{"limit": &filter.Limit, "offset": &filter.Offset} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeFailure(w, http.StatusBadRequest, name+" must be a non-negative integer")
			return
		}
		*dst = value
	}

	patients, err := h.services.PatientService.ListPatients(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err, msgPatientsFailed)
		return
	}
	if patients == nil {
		patients = []models.Patient{}
	}

	utils.WriteJSON(w, patientsResponse{
		Response: models.Response{Success: true},
		Patients: patients,
		Count:    len(patients),
	}, http.StatusOK)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.services.PatientService.GetPatient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, msgPatientsFailed)
		return
	}

	utils.WriteJSON(w, patientResponse{Response: models.Response{Success: true}, Patient: patient}, http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	var patient models.Patient
	if !h.decodeJSON(w, r, &patient) {
		return
	}

	updated, err := h.services.PatientService.UpdatePatient(r.Context(), chi.URLParam(r, "id"), patient)
	if err != nil {
		h.writeError(w, r, err, msgPatientsFailed)
		return
	}

	utils.WriteJSON(w, patientResponse{Response: models.Response{Success: true}, Patient: updated}, http.StatusOK)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PatientService.DeletePatient(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, msgPatientsFailed)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: msgPatientDeleted}, http.StatusOK)
}
