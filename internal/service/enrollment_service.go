package service

import (
	"context"
	"database/sql"
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

type guardianStore interface {
	FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*models.Guardian, error)
	Create(ctx context.Context, exec sqlx.ExtContext, guardian *models.Guardian) error
}

type studentStore interface {
	FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*models.Student, error)
	Create(ctx context.Context, exec sqlx.ExtContext, student *models.Student) error
}

type roomStore interface {
	FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*models.Room, error)
}

type enrollmentStore interface {
	ExistsConflict(ctx context.Context, exec sqlx.ExtContext, studentID, roomID int64) (bool, error)
	Create(ctx context.Context, exec sqlx.ExtContext, enrollment *models.Enrollment) error
	FindByID(ctx context.Context, id int64) (*models.Enrollment, error)
	Delete(ctx context.Context, id int64) error
}

type txBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// EnrollmentService drives the bulk-enrollment pipeline and single
// enrollment removal.
type EnrollmentService struct {
	db          txBeginner
	guardians   guardianStore
	students    studentStore
	rooms       roomStore
	enrollments enrollmentStore
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(db txBeginner, guardians guardianStore, students studentStore, rooms roomStore, enrollments enrollmentStore, metrics *MetricsService, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{
		db:          db,
		guardians:   guardians,
		students:    students,
		rooms:       rooms,
		enrollments: enrollments,
		metrics:     metrics,
		logger:      logger,
	}
}

// BulkEnroll ingests an uploaded enrollment workbook. Rows are processed
// sequentially, each inside its own transaction covering guardian upsert,
// student upsert, rule check, and enrollment insert; a failed row rolls its
// transaction back and the batch moves on. Only a rejected or unreadable
// file aborts the whole request.
func (s *EnrollmentService) BulkEnroll(ctx context.Context, filename string, file io.Reader) (*dto.BulkReport, error) {
	if !strings.HasSuffix(strings.ToLower(filename), spreadsheet.Extension) {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFile, "")
	}

	_, rows, err := spreadsheet.ReadRows(file)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrBadInput.Code, appErrors.ErrBadInput.Status, "Unable to read uploaded file")
	}

	batchID := uuid.NewString()
	s.logger.Info("bulk enrollment started",
		zap.String("batch_id", batchID),
		zap.String("filename", filename),
		zap.Int("rows", len(rows)),
	)

	report := dto.NewBulkReport()
	for _, row := range rows {
		s.processEnrollmentRow(ctx, batchID, row, report)
	}

	s.logger.Info("bulk enrollment finished",
		zap.String("batch_id", batchID),
		zap.Int("successful", len(report.Successful)),
		zap.Int("failed", len(report.Failed)),
	)
	return report, nil
}

func (s *EnrollmentService) processEnrollmentRow(ctx context.Context, batchID string, row spreadsheet.Row, report *dto.BulkReport) {
	guardianRow, studentRow, enrollmentRow, fieldErrs := mapEnrollmentRow(row)
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
		s.observeRow("enroll", "validation_failed")
		return
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.failUnexpected(report, &studentRow, err)
		s.observeRow("enroll", "error")
		return
	}
	defer func() { _ = tx.Rollback() }()

	guardianID, err := s.resolveGuardian(ctx, tx, guardianRow)
	if err != nil {
		s.failUnexpected(report, &studentRow, err)
		s.observeRow("enroll", "error")
		return
	}

	studentID, err := s.resolveStudent(ctx, tx, studentRow, guardianID)
	if err != nil {
		s.failUnexpected(report, &studentRow, err)
		s.observeRow("enroll", "error")
		return
	}

	if _, err := s.rooms.FindByID(ctx, tx, enrollmentRow.RoomID); err != nil {
		if err == sql.ErrNoRows {
			report.Failed = append(report.Failed, dto.BulkFailure{
				StudentID: &studentID,
				Message:   fmt.Sprintf("Room ID: %d does not exist", enrollmentRow.RoomID),
				Status:    dto.StatusFailed,
			})
			s.observeRow("enroll", "room_not_found")
			return
		}
		s.failUnexpected(report, &studentRow, err)
		s.observeRow("enroll", "error")
		return
	}

	conflict, err := s.enrollments.ExistsConflict(ctx, tx, studentID, enrollmentRow.RoomID)
	if err != nil {
		s.failUnexpected(report, &studentRow, err)
		s.observeRow("enroll", "error")
		return
	}
	if conflict {
		report.Failed = append(report.Failed, dto.BulkFailure{
			StudentID: &studentID,
			Message:   fmt.Sprintf("Student already enrolled in room or group: %d", enrollmentRow.RoomID),
			Status:    dto.StatusFailed,
		})
		s.observeRow("enroll", "duplicate")
		return
	}

	enrollment := &models.Enrollment{StudentID: studentID, RoomID: enrollmentRow.RoomID}
	if err := s.enrollments.Create(ctx, tx, enrollment); err != nil {
		s.failUnexpected(report, &studentRow, err)
		s.observeRow("enroll", "error")
		return
	}

	if err := tx.Commit(); err != nil {
		s.failUnexpected(report, &studentRow, err)
		s.observeRow("enroll", "error")
		return
	}

	report.Successful = append(report.Successful, dto.BulkSuccess{
		StudentID: studentID,
		RoomID:    enrollmentRow.RoomID,
		Status:    dto.StatusSuccessful,
	})
	s.observeRow("enroll", "success")
	s.logger.Debug("row enrolled",
		zap.String("batch_id", batchID),
		zap.Int("row", row.Number),
		zap.Int64("student_id", studentID),
		zap.Int64("room_id", enrollmentRow.RoomID),
	)
}

// resolveGuardian returns the ID of the guardian with the row's email,
// inserting it first when absent. Existing guardians are reused unchanged.
func (s *EnrollmentService) resolveGuardian(ctx context.Context, tx *sqlx.Tx, row dto.GuardianRow) (int64, error) {
	existing, err := s.guardians.FindByEmail(ctx, tx, row.Email)
	if err == nil {
		return existing.ID, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	guardian := &models.Guardian{
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Email:          row.Email,
		DocumentTypeID: row.DocumentTypeID,
		DocumentNumber: row.DocumentNumber,
		CountryID:      row.CountryID,
	}
	if err := s.guardians.Create(ctx, tx, guardian); err != nil {
		return 0, err
	}
	return guardian.ID, nil
}

// resolveStudent returns the ID of the student with the row's email,
// inserting it with the resolved guardian when absent. The lookup precedes
// the attachment: an existing student keeps its original guardian.
func (s *EnrollmentService) resolveStudent(ctx context.Context, tx *sqlx.Tx, row dto.StudentRow, guardianID int64) (int64, error) {
	existing, err := s.students.FindByEmail(ctx, tx, row.Email)
	if err == nil {
		return existing.ID, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	student := &models.Student{
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Email:      row.Email,
		GuardianID: guardianID,
	}
	if err := s.students.Create(ctx, tx, student); err != nil {
		return 0, err
	}
	return student.ID, nil
}

// Unenroll removes a single enrollment by ID.
func (s *EnrollmentService) Unenroll(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Enrollment with ID %d not found", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollment")
	}
	if err := s.enrollments.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete enrollment")
	}
	return enrollment, nil
}

func (s *EnrollmentService) failUnexpected(report *dto.BulkReport, student *dto.StudentRow, err error) {
	s.logger.Warn("bulk row failed unexpectedly", zap.Error(err))
	report.Failed = append(report.Failed, dto.BulkFailure{
		StudentData: student,
		Message:     err.Error(),
		Status:      dto.StatusFailed,
	})
}

func (s *EnrollmentService) observeRow(endpoint, outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveBulkRow(endpoint, outcome)
	}
}
