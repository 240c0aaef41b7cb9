package models

import "time"

// Group is a cohort of a course with a scheduled time window.
type Group struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	StartTime   *time.Time `db:"start_time" json:"start_time,omitempty"`
	EndTime     *time.Time `db:"end_time" json:"end_time,omitempty"`
	CourseID    int64      `db:"course_id" json:"course_id"`
}

// GroupWithCourse joins a group with its owning course for listings.
type GroupWithCourse struct {
	Group
	CourseName        string  `db:"course_name" json:"course_name"`
	CourseDescription *string `db:"course_description" json:"course_description,omitempty"`
}
