package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Walbert29/student-management/internal/models"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
)

type fakeGroupStore struct {
	groups  map[int64]*models.Group
	listing []models.GroupWithCourse
	lists   int
	deleted []int64
	nextID  int64
}

func (f *fakeGroupStore) ListWithCourses(_ context.Context) ([]models.GroupWithCourse, error) {
	f.lists++
	return f.listing, nil
}

func (f *fakeGroupStore) FindByID(_ context.Context, id int64) (*models.Group, error) {
	if g, ok := f.groups[id]; ok {
		return g, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeGroupStore) Create(_ context.Context, group *models.Group) error {
	f.nextID++
	group.ID = f.nextID
	return nil
}

func (f *fakeGroupStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRoomCounter struct {
	counts map[int64]int
}

func (f *fakeRoomCounter) CountByGroup(_ context.Context, groupID int64) (int, error) {
	return f.counts[groupID], nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	course.ID = 1
	return nil
}

func (f *fakeCourseStore) FindByID(_ context.Context, id int64) (*models.Course, error) {
	if c, ok := f.courses[id]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

// memoryCache is an in-process stand-in for the Redis-backed cache.
type memoryCache struct {
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func TestGroupListCaches(t *testing.T) {
	groups := &fakeGroupStore{
		listing: []models.GroupWithCourse{{Group: models.Group{ID: 1, Name: "G1", CourseID: 1}, CourseName: "Math"}},
	}
	cache := newMemoryCache()
	svc := NewGroupService(groups, &fakeRoomCounter{}, &fakeCourseStore{}, cache, time.Minute, nil, nil)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, groups.lists)
}

func TestGroupCreateUnknownCourse(t *testing.T) {
	svc := NewGroupService(&fakeGroupStore{}, &fakeRoomCounter{}, &fakeCourseStore{}, nil, 0, nil, nil)

	_, err := svc.Create(context.Background(), CreateGroupRequest{Name: "G1", CourseID: 42})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Course with ID 42 not found", appErr.Message)
}

func TestGroupCreateInvalidatesCache(t *testing.T) {
	groups := &fakeGroupStore{}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{1: {ID: 1, Name: "Math"}}}
	cache := newMemoryCache()
	cache.values[groupsListCacheKey] = []byte("[]")

	svc := NewGroupService(groups, &fakeRoomCounter{}, courses, cache, time.Minute, nil, nil)

	group, err := svc.Create(context.Background(), CreateGroupRequest{Name: "G1", CourseID: 1})
	require.NoError(t, err)
	assert.NotZero(t, group.ID)
	assert.NotContains(t, cache.values, groupsListCacheKey)
}

func TestGroupDeleteGuard(t *testing.T) {
	groups := &fakeGroupStore{groups: map[int64]*models.Group{1: {ID: 1}}}
	rooms := &fakeRoomCounter{counts: map[int64]int{1: 2}}
	svc := NewGroupService(groups, rooms, &fakeCourseStore{}, nil, 0, nil, nil)

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Group with ID 1 still has rooms assigned", appErr.Message)
	assert.Empty(t, groups.deleted)
}

func TestGroupDelete(t *testing.T) {
	groups := &fakeGroupStore{groups: map[int64]*models.Group{1: {ID: 1}}}
	svc := NewGroupService(groups, &fakeRoomCounter{}, &fakeCourseStore{}, nil, 0, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, groups.deleted)
}

func TestGroupDeleteNotFound(t *testing.T) {
	svc := NewGroupService(&fakeGroupStore{}, &fakeRoomCounter{}, &fakeCourseStore{}, nil, 0, nil, nil)

	err := svc.Delete(context.Background(), 5)
	require.Error(t, err)
	assert.Equal(t, "Group with ID 5 not found", appErrors.FromError(err).Message)
}
