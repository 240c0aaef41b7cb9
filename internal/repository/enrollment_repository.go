package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Walbert29/student-management/internal/models"
)

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec == nil {
		return r.db
	}
	return exec
}

// ExistsConflict reports whether enrolling the student into the room would
// violate uniqueness: the student already holds an enrollment in that exact
// room, or in any other room belonging to the same group. Runs on the
// caller's transaction so the check and the insert share one snapshot.
func (r *EnrollmentRepository) ExistsConflict(ctx context.Context, exec sqlx.ExtContext, studentID, roomID int64) (bool, error) {
	const query = `SELECT 1
        FROM students_mngt.enrollments e
        JOIN students_mngt.rooms r ON r.id = e.room_id
        WHERE e.student_id = $1
          AND (e.room_id = $2
               OR r.group_id = (SELECT group_id FROM students_mngt.rooms WHERE id = $2))
        LIMIT 1`
	var exists int
	if err := sqlx.GetContext(ctx, r.exec(exec), &exists, query, studentID, roomID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment conflict: %w", err)
	}
	return true, nil
}

// Create inserts an enrollment and assigns the generated ID.
func (r *EnrollmentRepository) Create(ctx context.Context, exec sqlx.ExtContext, enrollment *models.Enrollment) error {
	const query = `INSERT INTO students_mngt.enrollments (student_id, room_id)
        VALUES ($1, $2) RETURNING id`
	if err := sqlx.GetContext(ctx, r.exec(exec), &enrollment.ID, query,
		enrollment.StudentID, enrollment.RoomID); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// FindByID returns the enrollment with the given ID.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	const query = `SELECT id, student_id, room_id FROM students_mngt.enrollments WHERE id = $1`
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, id); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Delete removes an enrollment by ID.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM students_mngt.enrollments WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete enrollment %d: %w", id, err)
	}
	return nil
}
