package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Walbert29/student-management/internal/models"
)

// GroupRepository handles persistence of course groups.
type GroupRepository struct {
	db *sqlx.DB
}

// NewGroupRepository constructs the repository.
func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// ListWithCourses returns every group joined with its course.
func (r *GroupRepository) ListWithCourses(ctx context.Context) ([]models.GroupWithCourse, error) {
	const query = `SELECT g.id, g.name, g.description, g.start_time, g.end_time, g.course_id,
        c.name AS course_name, c.description AS course_description
        FROM students_mngt.groups g
        JOIN students_mngt.courses c ON c.id = g.course_id
        ORDER BY g.id`
	var groups []models.GroupWithCourse
	if err := r.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, fmt.Errorf("list groups with courses: %w", err)
	}
	return groups, nil
}

// FindByID returns the group with the given ID.
func (r *GroupRepository) FindByID(ctx context.Context, id int64) (*models.Group, error) {
	const query = `SELECT id, name, description, start_time, end_time, course_id
        FROM students_mngt.groups WHERE id = $1`
	var group models.Group
	if err := r.db.GetContext(ctx, &group, query, id); err != nil {
		return nil, err
	}
	return &group, nil
}

// Create inserts a group and assigns the generated ID.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	const query = `INSERT INTO students_mngt.groups (name, description, start_time, end_time, course_id)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.GetContext(ctx, &group.ID, query,
		group.Name, group.Description, group.StartTime, group.EndTime, group.CourseID); err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

// Delete removes a group by ID.
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM students_mngt.groups WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete group %d: %w", id, err)
	}
	return nil
}
