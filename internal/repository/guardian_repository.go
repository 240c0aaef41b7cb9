package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Walbert29/student-management/internal/models"
)

// GuardianRepository handles persistence of guardians.
type GuardianRepository struct {
	db *sqlx.DB
}

// NewGuardianRepository constructs the repository.
func NewGuardianRepository(db *sqlx.DB) *GuardianRepository {
	return &GuardianRepository{db: db}
}

func (r *GuardianRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec == nil {
		return r.db
	}
	return exec
}

// FindByEmail returns the guardian with the given email. sql.ErrNoRows is
// returned untouched so callers can branch on absence.
func (r *GuardianRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*models.Guardian, error) {
	const query = `SELECT id, first_name, last_name, email, document_type_id, document_number, country_id
        FROM students_mngt.guardians WHERE email = $1`
	var guardian models.Guardian
	if err := sqlx.GetContext(ctx, r.exec(exec), &guardian, query, email); err != nil {
		return nil, err
	}
	return &guardian, nil
}

// FindByID returns the guardian with the given ID.
func (r *GuardianRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*models.Guardian, error) {
	const query = `SELECT id, first_name, last_name, email, document_type_id, document_number, country_id
        FROM students_mngt.guardians WHERE id = $1`
	var guardian models.Guardian
	if err := sqlx.GetContext(ctx, r.exec(exec), &guardian, query, id); err != nil {
		return nil, err
	}
	return &guardian, nil
}

// Create inserts a guardian and assigns the generated ID, visible to the
// caller before its surrounding transaction commits.
func (r *GuardianRepository) Create(ctx context.Context, exec sqlx.ExtContext, guardian *models.Guardian) error {
	const query = `INSERT INTO students_mngt.guardians (first_name, last_name, email, document_type_id, document_number, country_id)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := sqlx.GetContext(ctx, r.exec(exec), &guardian.ID, query,
		guardian.FirstName, guardian.LastName, guardian.Email,
		guardian.DocumentTypeID, guardian.DocumentNumber, guardian.CountryID); err != nil {
		return fmt.Errorf("create guardian: %w", err)
	}
	return nil
}

// UpdateByID overwrites every field of an existing guardian. It reports
// whether a row was matched.
func (r *GuardianRepository) UpdateByID(ctx context.Context, exec sqlx.ExtContext, guardian *models.Guardian) (bool, error) {
	const query = `UPDATE students_mngt.guardians
        SET first_name = $2, last_name = $3, email = $4, document_type_id = $5, document_number = $6, country_id = $7
        WHERE id = $1`
	res, err := r.exec(exec).ExecContext(ctx, query, guardian.ID,
		guardian.FirstName, guardian.LastName, guardian.Email,
		guardian.DocumentTypeID, guardian.DocumentNumber, guardian.CountryID)
	if err != nil {
		return false, fmt.Errorf("update guardian %d: %w", guardian.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update guardian %d: %w", guardian.ID, err)
	}
	return affected > 0, nil
}
