package models

// Teacher is a course instructor assigned to rooms.
type Teacher struct {
	ID             int64  `db:"id" json:"id"`
	FirstName      string `db:"first_name" json:"first_name"`
	LastName       string `db:"last_name" json:"last_name"`
	Email          string `db:"email" json:"email"`
	DocumentTypeID *int64 `db:"document_type_id" json:"document_type_id,omitempty"`
	DocumentNumber *int64 `db:"document_number" json:"document_number,omitempty"`
	CountryID      *int64 `db:"country_id" json:"country_id,omitempty"`
}
