package dto

// Column labels of the bulk spreadsheet templates. These are the exact
// headers the downloadable templates carry and the only labels the row
// mapper reads; "Student Frist name" is the historical label shipped to
// users and kept for compatibility with files already in circulation.
const (
	ColStudentID        = "Student ID"
	ColStudentFirstName = "Student Frist name"
	ColStudentLastName  = "Student Last Name"
	ColStudentEmail     = "Student Email"
	ColGuardianID       = "Guardian ID"
	ColGuardianFirst    = "Guardian First Name"
	ColGuardianLast     = "Guardian Last Name"
	ColGuardianEmail    = "Guardian Email"
	ColGuardianDocType  = "Guardian Identification Type (ID)"
	ColGuardianDocNum   = "Guardian Identification Number"
	ColGuardianCountry  = "Guardian Country (Id)"
	ColRoomID           = "Room ID"
)

// GuardianRow is the guardian view of a spreadsheet row.
type GuardianRow struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	DocumentTypeID *int64 `json:"document_type_id,omitempty"`
	DocumentNumber *int64 `json:"document_number,omitempty"`
	CountryID      *int64 `json:"country_id,omitempty"`
}

// StudentRow is the student view of a spreadsheet row.
type StudentRow struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// EnrollmentRow is the enrollment view of a spreadsheet row.
type EnrollmentRow struct {
	StudentID *int64 `json:"student_id,omitempty"`
	RoomID    int64  `json:"room_id"`
}

// GuardianUpdateRow addresses an existing guardian by numeric ID.
type GuardianUpdateRow struct {
	ID int64 `json:"id"`
	GuardianRow
}

// StudentUpdateRow addresses an existing student by numeric ID.
type StudentUpdateRow struct {
	ID int64 `json:"id"`
	StudentRow
}

// FieldError describes one failed cell of a row.
type FieldError struct {
	Column  string
	Message string
	Value   *string
}

// Row outcome status labels used in the multi-status report.
const (
	StatusSuccessful = "Successful"
	StatusFailed     = "Failed"
)

// BulkSuccess is one successfully processed row.
type BulkSuccess struct {
	StudentID int64  `json:"Student ID"`
	RoomID    int64  `json:"Room ID,omitempty"`
	Message   string `json:"message,omitempty"`
	Status    string `json:"Status,omitempty"`
}

// BulkFailure is one failed row (or one failed field of a row for
// validation failures). The populated subset of fields depends on where in
// the pipeline the row failed.
type BulkFailure struct {
	Record      map[string]*string `json:"Record,omitempty"`
	Column      string             `json:"Column Error,omitempty"`
	Value       *string            `json:"Value entered,omitempty"`
	StudentID   *int64             `json:"Student ID,omitempty"`
	StudentData *StudentRow        `json:"Student Data,omitempty"`
	Message     string             `json:"Error message"`
	Status      string             `json:"Status"`
}

// BulkReport aggregates the per-row outcomes of one uploaded file. It is
// serialized verbatim as the 207 Multi-Status body.
type BulkReport struct {
	Successful []BulkSuccess `json:"Successful users"`
	Failed     []BulkFailure `json:"Failed users"`
}

// NewBulkReport returns a report whose lists marshal as [] when empty.
func NewBulkReport() *BulkReport {
	return &BulkReport{
		Successful: make([]BulkSuccess, 0),
		Failed:     make([]BulkFailure, 0),
	}
}
