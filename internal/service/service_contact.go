package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/store"
	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/internal/validators"
	"github.com/MKhiriev/hefin/models"
)

type contactService struct {
	contactRepository store.ContactRepository
	validator         validators.Validator
	ids               utils.IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, validator validators.Validator, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validator,
		ids:               utils.NewUUIDGenerator(),
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}
}

// SubmitContact validates and stores a contact form. Fields are trimmed, the
// email lower-cased and a blank organization stored as null.
func (s *contactService) SubmitContact(ctx context.Context, req models.ContactRequest, ipAddress string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*contactService.SubmitContact").Msg("invalid contact form")
		return models.Contact{}, err
	}

	contact := models.Contact{
		ID:        s.ids.Generate(),
		Kind:      models.ContactKindContact,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     normalizeEmail(req.Email),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: s.now(),
		IPAddress: ipAddress,
	}
	if org := strings.TrimSpace(req.Organization); org != "" {
		contact.Organization = &org
	}

	return s.save(ctx, contact)
}

// SubmitConsultation stores a consultation booking as a contact of kind
// consultation.
func (s *contactService) SubmitConsultation(ctx context.Context, req models.ConsultationRequest, ipAddress string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*contactService.SubmitConsultation").Msg("invalid consultation form")
		return models.Contact{}, err
	}

	contact := models.Contact{
		ID:            s.ids.Generate(),
		Kind:          models.ContactKindConsultation,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         normalizeEmail(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Service:       strings.TrimSpace(req.Service),
		PreferredDate: strings.TrimSpace(req.PreferredDate),
		Message:       strings.TrimSpace(req.Message),
		CreatedAt:     s.now(),
		IPAddress:     ipAddress,
	}

	return s.save(ctx, contact)
}

func (s *contactService) save(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := s.contactRepository.SaveContact(ctx, contact); err != nil {
		log.Err(err).Str("func", "*contactService.save").Str("contact_id", contact.ID).Msg("error saving contact")
		return models.Contact{}, fmt.Errorf("error saving contact: %w", err)
	}

	log.Info().Str("contact_id", contact.ID).Str("kind", string(contact.Kind)).Msg("contact stored")
	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepository.ListContacts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactService.ListContacts").Msg("error listing contacts")
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}

	return contacts, nil
}
