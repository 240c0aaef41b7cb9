package models

// Student is keyed naturally by email; every student belongs to exactly one
// guardian, which must exist before the student row is persisted.
type Student struct {
	ID         int64  `db:"id" json:"id"`
	FirstName  string `db:"first_name" json:"first_name"`
	LastName   string `db:"last_name" json:"last_name"`
	Email      string `db:"email" json:"email"`
	GuardianID int64  `db:"guardian_id" json:"guardian_id"`
}
