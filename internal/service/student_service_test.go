package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Walbert29/student-management/internal/dto"
	"github.com/Walbert29/student-management/internal/models"
)

type fakeGuardianUpdateStore struct {
	known   map[int64]bool
	updated []models.Guardian
}

func (f *fakeGuardianUpdateStore) UpdateByID(_ context.Context, _ sqlx.ExtContext, guardian *models.Guardian) (bool, error) {
	if !f.known[guardian.ID] {
		return false, nil
	}
	f.updated = append(f.updated, *guardian)
	return true, nil
}

type fakeStudentUpdateStore struct {
	known   map[int64]bool
	updated []models.Student
	byGroup map[int64][]models.Student
	byRoom  map[int64][]models.Student
}

func (f *fakeStudentUpdateStore) UpdateByID(_ context.Context, _ sqlx.ExtContext, student *models.Student) (bool, error) {
	if !f.known[student.ID] {
		return false, nil
	}
	f.updated = append(f.updated, *student)
	return true, nil
}

func (f *fakeStudentUpdateStore) ListByGroup(_ context.Context, groupID int64) ([]models.Student, error) {
	return f.byGroup[groupID], nil
}

func (f *fakeStudentUpdateStore) ListByRoom(_ context.Context, roomID int64) ([]models.Student, error) {
	return f.byRoom[roomID], nil
}

func updateRowCells(studentID, guardianID string) map[string]string {
	return map[string]string{
		dto.ColStudentID:        studentID,
		dto.ColStudentFirstName: "Ana",
		dto.ColStudentLastName:  "Perez",
		dto.ColStudentEmail:     "ana@example.com",
		dto.ColGuardianID:       guardianID,
		dto.ColGuardianFirst:    "Laura",
		dto.ColGuardianLast:     "Gomez",
		dto.ColGuardianEmail:    "laura@example.com",
	}
}

func TestBulkUpdateMixedRows(t *testing.T) {
	db, mock, cleanup := newTxMock(t)
	defer cleanup()

	guardians := &fakeGuardianUpdateStore{known: map[int64]bool{7: true}}
	students := &fakeStudentUpdateStore{known: map[int64]bool{10: true}}

	svc := NewStudentService(db, guardians, students, nil, nil)

	src := buildWorkbook(t, updateHeaders, []map[string]string{
		updateRowCells("10", "7"),  // both match
		updateRowCells("10", "99"), // guardian unknown, rolled back
		updateRowCells("88", "7"),  // student unknown, rolled back
	})

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectRollback()

	report, err := svc.BulkUpdate(context.Background(), "updates.xlsx", src)
	require.NoError(t, err)

	require.Len(t, report.Successful, 1)
	assert.Equal(t, int64(10), report.Successful[0].StudentID)
	assert.Equal(t, "Data Updated", report.Successful[0].Message)

	require.Len(t, report.Failed, 2)
	assert.Equal(t, "Guardian with ID 99 not found", report.Failed[0].Message)
	assert.Equal(t, "Student with ID 88 not found", report.Failed[1].Message)

	// only the fully matched row touched the stores
	require.Len(t, students.updated, 1)
	assert.Equal(t, "ana@example.com", students.updated[0].Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpdateValidationFailure(t *testing.T) {
	svc := NewStudentService(nil, nil, nil, nil, nil)

	cells := updateRowCells("not-a-number", "7")
	src := buildWorkbook(t, updateHeaders, []map[string]string{cells})

	report, err := svc.BulkUpdate(context.Background(), "updates.xlsx", src)
	require.NoError(t, err)

	assert.Empty(t, report.Successful)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, dto.ColStudentID, report.Failed[0].Column)
	assert.Equal(t, "Input should be a valid integer, unable to parse string as an integer", report.Failed[0].Message)
	require.NotNil(t, report.Failed[0].Value)
	assert.Equal(t, "not-a-number", *report.Failed[0].Value)
}

func TestStudentListings(t *testing.T) {
	students := &fakeStudentUpdateStore{
		byGroup: map[int64][]models.Student{1: {{ID: 10}, {ID: 11}}},
		byRoom:  map[int64][]models.Student{3: {{ID: 10}}},
	}
	svc := NewStudentService(nil, nil, students, nil, nil)

	byGroup, err := svc.ListByGroup(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, byGroup, 2)

	byRoom, err := svc.ListByRoom(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, byRoom, 1)
}
