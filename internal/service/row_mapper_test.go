package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Walbert29/student-management/internal/dto"
	"github.com/Walbert29/student-management/pkg/spreadsheet"
)

func cellRow(number int, values map[string]string) spreadsheet.Row {
	cells := make(map[string]*string, len(values))
	for column, value := range values {
		if value == "" {
			cells[column] = nil
			continue
		}
		v := value
		cells[column] = &v
	}
	return spreadsheet.Row{Number: number, Cells: cells}
}

func validEnrollmentCells() map[string]string {
	return map[string]string{
		dto.ColStudentFirstName: "Ana",
		dto.ColStudentLastName:  "Perez",
		dto.ColStudentEmail:     "ana@example.com",
		dto.ColGuardianFirst:    "Laura",
		dto.ColGuardianLast:     "Gomez",
		dto.ColGuardianEmail:    "laura@example.com",
		dto.ColGuardianDocType:  "1",
		dto.ColGuardianDocNum:   "123456",
		dto.ColGuardianCountry:  "57",
		dto.ColRoomID:           "3",
	}
}

func TestMapEnrollmentRow(t *testing.T) {
	guardian, student, enrollment, errs := mapEnrollmentRow(cellRow(2, validEnrollmentCells()))
	require.Empty(t, errs)

	assert.Equal(t, "Laura", guardian.FirstName)
	assert.Equal(t, "laura@example.com", guardian.Email)
	require.NotNil(t, guardian.DocumentNumber)
	assert.Equal(t, int64(123456), *guardian.DocumentNumber)

	assert.Equal(t, "Ana", student.FirstName)
	assert.Equal(t, "ana@example.com", student.Email)

	assert.Equal(t, int64(3), enrollment.RoomID)
	assert.Nil(t, enrollment.StudentID)
}

func TestMapEnrollmentRowMissingRequired(t *testing.T) {
	cells := validEnrollmentCells()
	cells[dto.ColStudentEmail] = ""

	_, _, _, errs := mapEnrollmentRow(cellRow(2, cells))
	require.Len(t, errs, 1)
	assert.Equal(t, dto.ColStudentEmail, errs[0].Column)
	assert.Equal(t, "Field required", errs[0].Message)
	assert.Nil(t, errs[0].Value)
}

func TestMapEnrollmentRowNumericName(t *testing.T) {
	cells := validEnrollmentCells()
	cells[dto.ColStudentFirstName] = "12345"

	_, _, _, errs := mapEnrollmentRow(cellRow(2, cells))
	require.Len(t, errs, 1)
	assert.Equal(t, dto.ColStudentFirstName, errs[0].Column)
	assert.Equal(t, "Input should be a valid string", errs[0].Message)
	require.NotNil(t, errs[0].Value)
	assert.Equal(t, "12345", *errs[0].Value)
}

func TestMapEnrollmentRowBadInteger(t *testing.T) {
	cells := validEnrollmentCells()
	cells[dto.ColRoomID] = "abc"

	_, _, _, errs := mapEnrollmentRow(cellRow(2, cells))
	require.Len(t, errs, 1)
	assert.Equal(t, dto.ColRoomID, errs[0].Column)
	assert.Equal(t, "Input should be a valid integer, unable to parse string as an integer", errs[0].Message)
}

func TestMapEnrollmentRowFloatFormInteger(t *testing.T) {
	cells := validEnrollmentCells()
	cells[dto.ColRoomID] = "3.0"

	_, _, enrollment, errs := mapEnrollmentRow(cellRow(2, cells))
	require.Empty(t, errs)
	assert.Equal(t, int64(3), enrollment.RoomID)
}

func TestMapEnrollmentRowCollectsEveryError(t *testing.T) {
	cells := validEnrollmentCells()
	cells[dto.ColStudentEmail] = ""
	cells[dto.ColGuardianLast] = "99"
	cells[dto.ColRoomID] = "three"

	_, _, _, errs := mapEnrollmentRow(cellRow(2, cells))
	assert.Len(t, errs, 3)
}

func TestMapUpdateRow(t *testing.T) {
	cells := validEnrollmentCells()
	cells[dto.ColStudentID] = "10"
	cells[dto.ColGuardianID] = "7"
	delete(cells, dto.ColRoomID)

	guardian, student, errs := mapUpdateRow(cellRow(2, cells))
	require.Empty(t, errs)
	assert.Equal(t, int64(7), guardian.ID)
	assert.Equal(t, int64(10), student.ID)
	assert.Equal(t, "Ana", student.FirstName)
}

func TestMapUpdateRowRequiresIDs(t *testing.T) {
	cells := validEnrollmentCells()
	delete(cells, dto.ColRoomID)

	_, _, errs := mapUpdateRow(cellRow(2, cells))
	require.Len(t, errs, 2)
	columns := []string{errs[0].Column, errs[1].Column}
	assert.Contains(t, columns, dto.ColGuardianID)
	assert.Contains(t, columns, dto.ColStudentID)
}
