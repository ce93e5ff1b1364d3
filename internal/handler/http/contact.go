package http

import (
	"net/http"

	"github.com/MKhiriev/hefin/internal/metrics"
	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/models"
)

type submissionResponse struct {
	models.Response
	ID string `json:"id"`
}

type contactsResponse struct {
	models.Response
	Contacts []models.Contact `json:"contacts"`
	Count    int              `json:"count"`
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.services.ContactService.SubmitContact(r.Context(), req, clientIP(r))
	h.countSubmission(models.ContactKindContact, err)
	if err != nil {
		h.writeError(w, r, err, msgContactFailed)
		return
	}

	utils.WriteJSON(w, submissionResponse{
		Response: models.Response{Success: true, Message: msgContactSubmitted},
		ID:       contact.ID,
	}, http.StatusOK)
}

func (h *Handler) submitConsultation(w http.ResponseWriter, r *http.Request) {
	var req models.ConsultationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.services.ContactService.SubmitConsultation(r.Context(), req, clientIP(r))
	h.countSubmission(models.ContactKindConsultation, err)
	if err != nil {
		h.writeError(w, r, err, msgConsultFailed)
		return
	}

	utils.WriteJSON(w, submissionResponse{
		Response: models.Response{Success: true, Message: msgConsultSubmitted},
		ID:       contact.ID,
	}, http.StatusOK)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.services.ContactService.ListContacts(r.Context())
	if err != nil {
		h.writeError(w, r, err, msgContactsFailed)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	utils.WriteJSON(w, contactsResponse{
		Response: models.Response{Success: true},
		Contacts: contacts,
		Count:    len(contacts),
	}, http.StatusOK)
}

func (h *Handler) countSubmission(kind models.ContactKind, err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.Submissions.WithLabelValues(string(kind), metrics.Result(err)).Inc()
}
