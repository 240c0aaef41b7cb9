package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Walbert29/student-management/internal/models"
)

// StudentRepository handles persistence of students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec == nil {
		return r.db
	}
	return exec
}

// FindByEmail returns the student with the given email. sql.ErrNoRows is
// returned untouched so callers can branch on absence.
func (r *StudentRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*models.Student, error) {
	const query = `SELECT id, first_name, last_name, email, guardian_id
        FROM students_mngt.students WHERE email = $1`
	var student models.Student
	if err := sqlx.GetContext(ctx, r.exec(exec), &student, query, email); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByID returns the student with the given ID.
func (r *StudentRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*models.Student, error) {
	const query = `SELECT id, first_name, last_name, email, guardian_id
        FROM students_mngt.students WHERE id = $1`
	var student models.Student
	if err := sqlx.GetContext(ctx, r.exec(exec), &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a student and assigns the generated ID.
func (r *StudentRepository) Create(ctx context.Context, exec sqlx.ExtContext, student *models.Student) error {
	const query = `INSERT INTO students_mngt.students (first_name, last_name, email, guardian_id)
        VALUES ($1, $2, $3, $4) RETURNING id`
	if err := sqlx.GetContext(ctx, r.exec(exec), &student.ID, query,
		student.FirstName, student.LastName, student.Email, student.GuardianID); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// UpdateByID overwrites the identity fields of an existing student. The
// guardian association is deliberately left untouched; re-submissions must
// not rewire a student to a different guardian.
func (r *StudentRepository) UpdateByID(ctx context.Context, exec sqlx.ExtContext, student *models.Student) (bool, error) {
	const query = `UPDATE students_mngt.students
        SET first_name = $2, last_name = $3, email = $4
        WHERE id = $1`
	res, err := r.exec(exec).ExecContext(ctx, query, student.ID,
		student.FirstName, student.LastName, student.Email)
	if err != nil {
		return false, fmt.Errorf("update student %d: %w", student.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update student %d: %w", student.ID, err)
	}
	return affected > 0, nil
}

// ListByGroup returns the students enrolled in any room of a group.
func (r *StudentRepository) ListByGroup(ctx context.Context, groupID int64) ([]models.Student, error) {
	const query = `SELECT s.id, s.first_name, s.last_name, s.email, s.guardian_id
        FROM students_mngt.students s
        JOIN students_mngt.enrollments e ON e.student_id = s.id
        JOIN students_mngt.rooms r ON r.id = e.room_id
        WHERE r.group_id = $1
        ORDER BY s.id`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, groupID); err != nil {
		return nil, fmt.Errorf("list students by group %d: %w", groupID, err)
	}
	return students, nil
}

// ListByRoom returns the students enrolled in a room.
func (r *StudentRepository) ListByRoom(ctx context.Context, roomID int64) ([]models.Student, error) {
	const query = `SELECT s.id, s.first_name, s.last_name, s.email, s.guardian_id
        FROM students_mngt.students s
        JOIN students_mngt.enrollments e ON e.student_id = s.id
        WHERE e.room_id = $1
        ORDER BY s.id`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, roomID); err != nil {
		return nil, fmt.Errorf("list students by room %d: %w", roomID, err)
	}
	return students, nil
}
