package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Walbert29/student-management/internal/models"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
)

type fakeRoomListStore struct {
	fakeRoomStore
	listing []models.RoomWithGroup
	lists   int
}

func (f *fakeRoomListStore) ListWithGroups(_ context.Context) ([]models.RoomWithGroup, error) {
	f.lists++
	return f.listing, nil
}

func TestRoomListCaches(t *testing.T) {
	rooms := &fakeRoomListStore{
		listing: []models.RoomWithGroup{{Room: models.Room{ID: 3, Name: "Room A", GroupID: 1}, GroupName: "G1"}},
	}
	cache := newMemoryCache()
	svc := NewRoomService(rooms, &fakeStudentUpdateStore{}, cache, time.Minute, nil)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, rooms.lists)
}

func TestRoomRosterCSV(t *testing.T) {
	rooms := &fakeRoomListStore{
		fakeRoomStore: fakeRoomStore{rooms: map[int64]*models.Room{3: {ID: 3, Name: "Room A"}}},
	}
	students := &fakeStudentUpdateStore{
		byRoom: map[int64][]models.Student{3: {
			{ID: 10, FirstName: "Ana", LastName: "Perez", Email: "ana@example.com"},
		}},
	}
	svc := NewRoomService(rooms, students, nil, 0, nil)

	roster, err := svc.Roster(context.Background(), 3, RosterFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "roster_room_3.csv", roster.Filename)
	assert.Equal(t, "text/csv", roster.ContentType)

	body := string(roster.Data)
	assert.True(t, strings.HasPrefix(body, "Student ID,First Name,Last Name,Email"))
	assert.Contains(t, body, "10,Ana,Perez,ana@example.com")
}

func TestRoomRosterPDFByDefault(t *testing.T) {
	rooms := &fakeRoomListStore{
		fakeRoomStore: fakeRoomStore{rooms: map[int64]*models.Room{3: {ID: 3, Name: "Room A"}}},
	}
	svc := NewRoomService(rooms, &fakeStudentUpdateStore{}, nil, 0, nil)

	roster, err := svc.Roster(context.Background(), 3, "")
	require.NoError(t, err)
	assert.Equal(t, "roster_room_3.pdf", roster.Filename)
	assert.Equal(t, "application/pdf", roster.ContentType)
	assert.True(t, strings.HasPrefix(string(roster.Data), "%PDF"))
}

func TestRoomRosterUnknownRoom(t *testing.T) {
	svc := NewRoomService(&fakeRoomListStore{}, &fakeStudentUpdateStore{}, nil, 0, nil)

	_, err := svc.Roster(context.Background(), 42, RosterFormatCSV)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Room with ID 42 not found", appErr.Message)
}

func TestRoomRosterUnknownFormat(t *testing.T) {
	rooms := &fakeRoomListStore{
		fakeRoomStore: fakeRoomStore{rooms: map[int64]*models.Room{3: {ID: 3}}},
	}
	svc := NewRoomService(rooms, &fakeStudentUpdateStore{}, nil, 0, nil)

	_, err := svc.Roster(context.Background(), 3, "docx")
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}
