package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Walbert29/student-management/internal/dto"
	"github.com/Walbert29/student-management/internal/models"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
	"github.com/Walbert29/student-management/pkg/spreadsheet"
)

type guardianUpdateStore interface {
	UpdateByID(ctx context.Context, exec sqlx.ExtContext, guardian *models.Guardian) (bool, error)
}

type studentUpdateStore interface {
	UpdateByID(ctx context.Context, exec sqlx.ExtContext, student *models.Student) (bool, error)
	ListByGroup(ctx context.Context, groupID int64) ([]models.Student, error)
	ListByRoom(ctx context.Context, roomID int64) ([]models.Student, error)
}

// StudentService drives the bulk update pipeline and student listings.
type StudentService struct {
	db        txBeginner
	guardians guardianUpdateStore
	students  studentUpdateStore
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(db txBeginner, guardians guardianUpdateStore, students studentUpdateStore, metrics *MetricsService, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{db: db, guardians: guardians, students: students, metrics: metrics, logger: logger}
}

// BulkUpdate ingests an uploaded update workbook. Each row addresses an
// existing guardian and student by numeric ID and overwrites their fields
// inside a per-row transaction; a row referencing an unknown ID fails alone
// and rolls back without touching the other record.
func (s *StudentService) BulkUpdate(ctx context.Context, filename string, file io.Reader) (*dto.BulkReport, error) {
	if !strings.HasSuffix(strings.ToLower(filename), spreadsheet.Extension) {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFile, "")
	}

	_, rows, err := spreadsheet.ReadRows(file)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrBadInput.Code, appErrors.ErrBadInput.Status, "Unable to read uploaded file")
	}

	batchID := uuid.NewString()
	s.logger.Info("bulk student update started",
		zap.String("batch_id", batchID),
		zap.String("filename", filename),
		zap.Int("rows", len(rows)),
	)

	report := dto.NewBulkReport()
	for _, row := range rows {
		s.processUpdateRow(ctx, row, report)
	}

	s.logger.Info("bulk student update finished",
		zap.String("batch_id", batchID),
		zap.Int("successful", len(report.Successful)),
		zap.Int("failed", len(report.Failed)),
	)
	return report, nil
}

func (s *StudentService) processUpdateRow(ctx context.Context, row spreadsheet.Row, report *dto.BulkReport) {
	guardianRow, studentRow, fieldErrs := mapUpdateRow(row)
	if len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			report.Failed = append(report.Failed, dto.BulkFailure{
				Record:  row.Cells,
				Column:  fe.Column,
				Message: fe.Message,
				Value:   fe.Value,
				Status:  dto.StatusFailed,
			})
		}
		s.observeRow("update", "validation_failed")
		return
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.failUnexpected(report, &studentRow.StudentRow, err)
		s.observeRow("update", "error")
		return
	}
	defer func() { _ = tx.Rollback() }()

	guardian := &models.Guardian{
		ID:             guardianRow.ID,
		FirstName:      guardianRow.FirstName,
		LastName:       guardianRow.LastName,
		Email:          guardianRow.Email,
		DocumentTypeID: guardianRow.DocumentTypeID,
		DocumentNumber: guardianRow.DocumentNumber,
		CountryID:      guardianRow.CountryID,
	}
	matched, err := s.guardians.UpdateByID(ctx, tx, guardian)
	if err != nil {
		s.failUnexpected(report, &studentRow.StudentRow, err)
		s.observeRow("update", "error")
		return
	}
	if !matched {
		report.Failed = append(report.Failed, dto.BulkFailure{
			StudentID: &studentRow.ID,
			Message:   fmt.Sprintf("Guardian with ID %d not found", guardianRow.ID),
			Status:    dto.StatusFailed,
		})
		s.observeRow("update", "guardian_not_found")
		return
	}

	student := &models.Student{
		ID:        studentRow.ID,
		FirstName: studentRow.FirstName,
		LastName:  studentRow.LastName,
		Email:     studentRow.Email,
	}
	matched, err = s.students.UpdateByID(ctx, tx, student)
	if err != nil {
		s.failUnexpected(report, &studentRow.StudentRow, err)
		s.observeRow("update", "error")
		return
	}
	if !matched {
		report.Failed = append(report.Failed, dto.BulkFailure{
			StudentID: &studentRow.ID,
			Message:   fmt.Sprintf("Student with ID %d not found", studentRow.ID),
			Status:    dto.StatusFailed,
		})
		s.observeRow("update", "student_not_found")
		return
	}

	if err := tx.Commit(); err != nil {
		s.failUnexpected(report, &studentRow.StudentRow, err)
		s.observeRow("update", "error")
		return
	}

	report.Successful = append(report.Successful, dto.BulkSuccess{
		StudentID: studentRow.ID,
		Message:   "Data Updated",
	})
	s.observeRow("update", "success")
}

// ListByGroup returns the students enrolled in any room of the group.
func (s *StudentService) ListByGroup(ctx context.Context, groupID int64) ([]models.Student, error) {
	students, err := s.students.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students by group")
	}
	return students, nil
}

// ListByRoom returns the students enrolled in the room.
func (s *StudentService) ListByRoom(ctx context.Context, roomID int64) ([]models.Student, error) {
	students, err := s.students.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students by room")
	}
	return students, nil
}

func (s *StudentService) failUnexpected(report *dto.BulkReport, student *dto.StudentRow, err error) {
	s.logger.Warn("bulk row failed unexpectedly", zap.Error(err))
	report.Failed = append(report.Failed, dto.BulkFailure{
		StudentData: student,
		Message:     err.Error(),
		Status:      dto.StatusFailed,
	})
}

func (s *StudentService) observeRow(endpoint, outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveBulkRow(endpoint, outcome)
	}
}
