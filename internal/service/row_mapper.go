package service

import (
	"strconv"
	"strings"

	"github.com/Walbert29/student-management/internal/dto"
	"github.com/Walbert29/student-management/pkg/spreadsheet"
)

// Cell-level failure messages, kept wire-compatible with the reports the
// previous revision of this API emitted.
const (
	msgFieldRequired  = "Field required"
	msgInvalidString  = "Input should be a valid string"
	msgInvalidInteger = "Input should be a valid integer, unable to parse string as an integer"
)

// rowReader accumulates field errors while cells are read, so one bad cell
// never hides another.
type rowReader struct {
	row  spreadsheet.Row
	errs []dto.FieldError
}

func (rr *rowReader) fail(column, message string, value *string) {
	rr.errs = append(rr.errs, dto.FieldError{Column: column, Message: message, Value: value})
}

// requiredString reads a mandatory text cell. A cell whose whole content is
// numeric is rejected: the text columns hold names and emails, and a bare
// number there means the sheet was filled in the wrong column.
func (rr *rowReader) requiredString(column string) string {
	raw := rr.row.Get(column)
	if raw == nil {
		rr.fail(column, msgFieldRequired, nil)
		return ""
	}
	if isNumeric(*raw) {
		rr.fail(column, msgInvalidString, raw)
		return ""
	}
	return *raw
}

func (rr *rowReader) requiredInt(column string) int64 {
	raw := rr.row.Get(column)
	if raw == nil {
		rr.fail(column, msgFieldRequired, nil)
		return 0
	}
	n, ok := parseCellInt(*raw)
	if !ok {
		rr.fail(column, msgInvalidInteger, raw)
		return 0
	}
	return n
}

func (rr *rowReader) optionalInt(column string) *int64 {
	raw := rr.row.Get(column)
	if raw == nil {
		return nil
	}
	n, ok := parseCellInt(*raw)
	if !ok {
		rr.fail(column, msgInvalidInteger, raw)
		return nil
	}
	return &n
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// parseCellInt accepts plain integers and the "3.0" form that numeric xlsx
// cells surface as.
func parseCellInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return int64(f), true
	}
	return 0, false
}

// mapEnrollmentRow builds the guardian, student, and enrollment views of one
// spreadsheet row, collecting every field error instead of stopping at the
// first. A row with any error is unusable as a whole: all three views must
// validate together before anything is persisted.
func mapEnrollmentRow(row spreadsheet.Row) (dto.GuardianRow, dto.StudentRow, dto.EnrollmentRow, []dto.FieldError) {
	rr := &rowReader{row: row}

	guardian := dto.GuardianRow{
		FirstName:      rr.requiredString(dto.ColGuardianFirst),
		LastName:       rr.requiredString(dto.ColGuardianLast),
		Email:          rr.requiredString(dto.ColGuardianEmail),
		DocumentTypeID: rr.optionalInt(dto.ColGuardianDocType),
		DocumentNumber: rr.optionalInt(dto.ColGuardianDocNum),
		CountryID:      rr.optionalInt(dto.ColGuardianCountry),
	}
	student := dto.StudentRow{
		FirstName: rr.requiredString(dto.ColStudentFirstName),
		LastName:  rr.requiredString(dto.ColStudentLastName),
		Email:     rr.requiredString(dto.ColStudentEmail),
	}
	enrollment := dto.EnrollmentRow{
		StudentID: rr.optionalInt(dto.ColStudentID),
		RoomID:    rr.requiredInt(dto.ColRoomID),
	}

	return guardian, student, enrollment, rr.errs
}

// mapUpdateRow builds the update views of one spreadsheet row. Both records
// are addressed by their numeric IDs; every other mapped field overwrites
// the stored value.
func mapUpdateRow(row spreadsheet.Row) (dto.GuardianUpdateRow, dto.StudentUpdateRow, []dto.FieldError) {
	rr := &rowReader{row: row}

	guardian := dto.GuardianUpdateRow{
		ID: rr.requiredInt(dto.ColGuardianID),
		GuardianRow: dto.GuardianRow{
			FirstName:      rr.requiredString(dto.ColGuardianFirst),
			LastName:       rr.requiredString(dto.ColGuardianLast),
			Email:          rr.requiredString(dto.ColGuardianEmail),
			DocumentTypeID: rr.optionalInt(dto.ColGuardianDocType),
			DocumentNumber: rr.optionalInt(dto.ColGuardianDocNum),
			CountryID:      rr.optionalInt(dto.ColGuardianCountry),
		},
	}
	student := dto.StudentUpdateRow{
		ID: rr.requiredInt(dto.ColStudentID),
		StudentRow: dto.StudentRow{
			FirstName: rr.requiredString(dto.ColStudentFirstName),
			LastName:  rr.requiredString(dto.ColStudentLastName),
			Email:     rr.requiredString(dto.ColStudentEmail),
		},
	}

	return guardian, student, rr.errs
}
