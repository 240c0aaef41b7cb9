package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Walbert29/student-management/internal/models"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
)

const groupsListCacheKey = "listings:groups"

type groupStore interface {
	ListWithCourses(ctx context.Context) ([]models.GroupWithCourse, error)
	FindByID(ctx context.Context, id int64) (*models.Group, error)
	Create(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id int64) error
}

type roomCounter interface {
	CountByGroup(ctx context.Context, groupID int64) (int, error)
}

type listingCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CreateGroupRequest describes the group creation payload.
type CreateGroupRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	CourseID    int64      `json:"course_id" validate:"required"`
}

// GroupService orchestrates group management.
type GroupService struct {
	groups    groupStore
	rooms     roomCounter
	courses   courseStore
	cache     listingCache
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGroupService constructs GroupService.
func NewGroupService(groups groupStore, rooms roomCounter, courses courseStore, cache listingCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *GroupService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroupService{
		groups:    groups,
		rooms:     rooms,
		courses:   courses,
		cache:     cache,
		cacheTTL:  cacheTTL,
		validator: validate,
		logger:    logger,
	}
}

// List returns every group joined with its course, served from cache when
// warm.
func (s *GroupService) List(ctx context.Context) ([]models.GroupWithCourse, error) {
	if s.cache != nil {
		var cached []models.GroupWithCourse
		if err := s.cache.Get(ctx, groupsListCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	groups, err := s.groups.ListWithCourses(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list groups")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, groupsListCacheKey, groups, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache group listing", zap.Error(err))
		}
	}
	return groups, nil
}

// Create registers a new group under an existing course.
func (s *GroupService) Create(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid group payload")
	}

	if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Course with ID %d not found", req.CourseID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up course")
	}

	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CourseID:    req.CourseID,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create group")
	}

	s.invalidateListing(ctx)
	return group, nil
}

// Delete removes a group. Groups that still have rooms assigned are
// protected and reported as a conflict.
func (s *GroupService) Delete(ctx context.Context, id int64) error {
	if _, err := s.groups.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Group with ID %d not found", id))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up group")
	}

	count, err := s.rooms.CountByGroup(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count rooms in group")
	}
	if count > 0 {
		return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("Group with ID %d still has rooms assigned", id))
	}

	if err := s.groups.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete group")
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *GroupService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, groupsListCacheKey, roomsListCacheKey); err != nil {
		s.logger.Warn("failed to invalidate listing cache", zap.Error(err))
	}
}
