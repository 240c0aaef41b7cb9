package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Walbert29/student-management/internal/models"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
	"github.com/Walbert29/student-management/pkg/export"
)

const roomsListCacheKey = "listings:rooms"

// Roster export formats.
const (
	RosterFormatPDF = "pdf"
	RosterFormatCSV = "csv"
)

type roomListStore interface {
	roomStore
	ListWithGroups(ctx context.Context) ([]models.RoomWithGroup, error)
}

type roomStudentLister interface {
	ListByRoom(ctx context.Context, roomID int64) ([]models.Student, error)
}

// RosterFile is a rendered roster export ready to be served as a download.
type RosterFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RoomService orchestrates room listings and roster exports.
type RoomService struct {
	rooms    roomListStore
	students roomStudentLister
	cache    listingCache
	cacheTTL time.Duration
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewRoomService constructs RoomService.
func NewRoomService(rooms roomListStore, students roomStudentLister, cache listingCache, cacheTTL time.Duration, logger *zap.Logger) *RoomService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomService{
		rooms:    rooms,
		students: students,
		cache:    cache,
		cacheTTL: cacheTTL,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// List returns every room joined with its group, served from cache when
// warm.
func (s *RoomService) List(ctx context.Context) ([]models.RoomWithGroup, error) {
	if s.cache != nil {
		var cached []models.RoomWithGroup
		if err := s.cache.Get(ctx, roomsListCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	rooms, err := s.rooms.ListWithGroups(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, roomsListCacheKey, rooms, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache room listing", zap.Error(err))
		}
	}
	return rooms, nil
}

// Roster renders the list of students enrolled in a room as a downloadable
// file. Supported formats are pdf (default) and csv.
func (s *RoomService) Roster(ctx context.Context, roomID int64, format string) (*RosterFile, error) {
	room, err := s.rooms.FindByID(ctx, nil, roomID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Room with ID %d not found", roomID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up room")
	}

	students, err := s.students.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students in room")
	}

	dataset := export.Dataset{
		Headers: []string{"Student ID", "First Name", "Last Name", "Email"},
		Rows:    make([]map[string]string, 0, len(students)),
	}
	for _, st := range students {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Student ID": strconv.FormatInt(st.ID, 10),
			"First Name": st.FirstName,
			"Last Name":  st.LastName,
			"Email":      st.Email,
		})
	}

	switch format {
	case RosterFormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv roster")
		}
		return &RosterFile{
			Filename:    fmt.Sprintf("roster_room_%d.csv", roomID),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case RosterFormatPDF, "":
		data, err := s.pdf.Render(dataset, fmt.Sprintf("Roster - %s", room.Name))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf roster")
		}
		return &RosterFile{
			Filename:    fmt.Sprintf("roster_room_%d.pdf", roomID),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrBadInput, fmt.Sprintf("Export format not supported: %s", format))
	}
}
