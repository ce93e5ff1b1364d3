package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type patientRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	logger.Debug().Msg("PatientRepository created")
	return &patientRepository{
		db:     db,
		logger: logger,
	}
}

func (r *patientRepository) CreatePatient(ctx context.Context, p models.Patient) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("patients").
		Columns("id", "first_name", "last_name", "date_of_birth", "gender", "email", "phone",
			"address", "insurance_provider", "policy_number", "created_at", "updated_at").
		Values(p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Email, p.Phone,
			p.Address, p.InsuranceProvider, p.PolicyNumber, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*patientRepository.CreatePatient").Str("patient_id", p.ID).Msg("error inserting patient")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *patientRepository) GetPatient(ctx context.Context, id string) (models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(patientColumns...).
		From("patients").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Patient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanPatient(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
		return models.Patient{}, ErrPatientNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.GetPatient").Str("patient_id", id).Msg("error selecting patient")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

func (r *patientRepository) ListPatients(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(patientColumns...).
		From("patients").
		OrderBy("last_name", "first_name")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
			sq.ILike{"email": pattern},
		})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.ListPatients").Msg("error querying patients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		patients = append(patients, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return patients, nil
}

func (r *patientRepository) UpdatePatient(ctx context.Context, p models.Patient) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("patients").
		SetMap(map[string]any{
			"first_name":         p.FirstName,
			"last_name":          p.LastName,
			"date_of_birth":      p.DateOfBirth,
			"gender":             p.Gender,
			"email":              p.Email,
			"phone":              p.Phone,
			"address":            p.Address,
			"insurance_provider": p.InsuranceProvider,
			"policy_number":      p.PolicyNumber,
			"updated_at":         p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*patientRepository.UpdatePatient", p.ID, query, args, log)
}

func (r *patientRepository) DeletePatient(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("patients").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*patientRepository.DeletePatient", id, query, args, log)
}

// execAffectingOne runs a statement that must touch exactly the patient id.
func (r *patientRepository) execAffectingOne(ctx context.Context, fn, id, query string, args []any, log *logger.Logger) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if isInvalidID(err) {
		return ErrPatientNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Str("patient_id", id).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (models.Patient, error) {
	var p models.Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender, &p.Email,
		&p.Phone, &p.Address, &p.InsuranceProvider, &p.PolicyNumber, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// isInvalidID reports whether err is PostgreSQL rejecting a malformed uuid.
func isInvalidID(err error) bool {
	return err != nil && postgresError(err) == pgerrcode.InvalidTextRepresentation
}
