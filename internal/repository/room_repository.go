package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Walbert29/student-management/internal/models"
)

// RoomRepository handles persistence of rooms.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository constructs the repository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec == nil {
		return r.db
	}
	return exec
}

// FindByID returns the room with the given ID. sql.ErrNoRows is returned
// untouched so callers can branch on absence.
func (r *RoomRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*models.Room, error) {
	const query = `SELECT id, name, group_id, teacher_id FROM students_mngt.rooms WHERE id = $1`
	var room models.Room
	if err := sqlx.GetContext(ctx, r.exec(exec), &room, query, id); err != nil {
		return nil, err
	}
	return &room, nil
}

// ListWithGroups returns every room joined with its group.
func (r *RoomRepository) ListWithGroups(ctx context.Context) ([]models.RoomWithGroup, error) {
	const query = `SELECT r.id, r.name, r.group_id, r.teacher_id, g.name AS group_name, g.course_id
        FROM students_mngt.rooms r
        JOIN students_mngt.groups g ON g.id = r.group_id
        ORDER BY r.id`
	var rooms []models.RoomWithGroup
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list rooms with groups: %w", err)
	}
	return rooms, nil
}

// CountByGroup returns how many rooms reference a group. Used as the
// referential guard before deleting the group.
func (r *RoomRepository) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM students_mngt.rooms WHERE group_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, groupID); err != nil {
		return 0, fmt.Errorf("count rooms in group %d: %w", groupID, err)
	}
	return count, nil
}
