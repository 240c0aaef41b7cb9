package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Walbert29/student-management/internal/models"
)

// TeacherRepository handles persistence of teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs the repository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// FindByEmail returns the teacher with the given email. sql.ErrNoRows is
// returned untouched so callers can branch on absence.
func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	const query = `SELECT id, first_name, last_name, email, document_type_id, document_number, country_id
        FROM students_mngt.teachers WHERE email = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, email); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create inserts a teacher and assigns the generated ID.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	const query = `INSERT INTO students_mngt.teachers (first_name, last_name, email, document_type_id, document_number, country_id)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.GetContext(ctx, &teacher.ID, query,
		teacher.FirstName, teacher.LastName, teacher.Email,
		teacher.DocumentTypeID, teacher.DocumentNumber, teacher.CountryID); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}
