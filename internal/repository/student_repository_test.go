package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Walbert29/student-management/internal/models"
)

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("INSERT INTO students_mngt.students").
		WithArgs("Ana", "Perez", "ana@example.com", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	student := &models.Student{FirstName: "Ana", LastName: "Perez", Email: "ana@example.com", GuardianID: 7}
	require.NoError(t, repo.Create(context.Background(), nil, student))
	assert.Equal(t, int64(10), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdateByIDLeavesGuardian(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	// only identity fields travel in the update
	mock.ExpectExec("UPDATE students_mngt.students").
		WithArgs(int64(10), "Ana", "Perez", "ana@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	student := &models.Student{ID: 10, FirstName: "Ana", LastName: "Perez", Email: "ana@example.com", GuardianID: 99}
	matched, err := repo.UpdateByID(context.Background(), nil, student)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListByRoom(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "guardian_id"}).
		AddRow(10, "Ana", "Perez", "ana@example.com", 7).
		AddRow(11, "Luis", "Rojas", "luis@example.com", 8)
	mock.ExpectQuery("SELECT s.id, s.first_name, s.last_name, s.email, s.guardian_id").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	students, err := repo.ListByRoom(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, students, 2)
	assert.Equal(t, "Luis", students[1].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
