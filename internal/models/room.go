package models

// Room belongs to exactly one group and hosts enrollments.
type Room struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	GroupID   int64  `db:"group_id" json:"group_id"`
	TeacherID int64  `db:"teacher_id" json:"teacher_id"`
}

// RoomWithGroup joins a room with its group for listings.
type RoomWithGroup struct {
	Room
	GroupName string `db:"group_name" json:"group_name"`
	CourseID  int64  `db:"course_id" json:"course_id"`
}
