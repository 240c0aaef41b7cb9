package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Walbert29/student-management/internal/models"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
)

type fakeTeacherStore struct {
	byEmail map[string]*models.Teacher
	created []string
}

func (f *fakeTeacherStore) FindByEmail(_ context.Context, email string) (*models.Teacher, error) {
	if teacher, ok := f.byEmail[email]; ok {
		return teacher, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeTeacherStore) Create(_ context.Context, teacher *models.Teacher) error {
	teacher.ID = 1
	f.created = append(f.created, teacher.Email)
	return nil
}

func TestTeacherCreate(t *testing.T) {
	store := &fakeTeacherStore{byEmail: map[string]*models.Teacher{}}
	svc := NewTeacherService(store, nil, nil)

	teacher, err := svc.Create(context.Background(), CreateTeacherRequest{
		FirstName: "Carlos",
		LastName:  "Ruiz",
		Email:     "carlos@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), teacher.ID)
	assert.Equal(t, []string{"carlos@example.com"}, store.created)
}

func TestTeacherCreateDuplicateEmail(t *testing.T) {
	store := &fakeTeacherStore{byEmail: map[string]*models.Teacher{
		"carlos@example.com": {ID: 1, Email: "carlos@example.com"},
	}}
	svc := NewTeacherService(store, nil, nil)

	_, err := svc.Create(context.Background(), CreateTeacherRequest{
		FirstName: "Carlos",
		LastName:  "Ruiz",
		Email:     "carlos@example.com",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Teacher with email: carlos@example.com already exists", appErr.Message)
	assert.Empty(t, store.created)
}

func TestTeacherCreateValidates(t *testing.T) {
	svc := NewTeacherService(&fakeTeacherStore{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateTeacherRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}
