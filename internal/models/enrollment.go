package models

// Enrollment ties a student to a room. Two invariants hold: no duplicate
// (student, room) pair, and a student enrolls in at most one room per group.
type Enrollment struct {
	ID        int64 `db:"id" json:"id"`
	StudentID int64 `db:"student_id" json:"student_id"`
	RoomID    int64 `db:"room_id" json:"room_id"`
}
