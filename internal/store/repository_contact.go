package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/models"
)

type contactRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("ContactRepository created")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) SaveContact(ctx context.Context, c models.Contact) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveContact,
		c.ID, c.Kind, c.FirstName, c.LastName, c.Email, c.Organization,
		c.Phone, c.Service, c.PreferredDate, c.Message, c.IPAddress, c.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SaveContact").Str("contact_id", c.ID).Msg("error inserting contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *contactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listContacts)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error querying contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var (
			c            models.Contact
			organization sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Kind, &c.FirstName, &c.LastName, &c.Email, &organization,
			&c.Phone, &c.Service, &c.PreferredDate, &c.Message, &c.IPAddress, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*contactRepository.ListContacts").Msg("error scanning contact")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if organization.Valid {
			c.Organization = &organization.String
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}
