package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Walbert29/student-management/internal/dto"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
	"github.com/Walbert29/student-management/pkg/spreadsheet"
)

// TemplateFile is a generated workbook ready to be served as a download.
type TemplateFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type templateDefinition struct {
	ID          int64
	Name        string
	Description string
	Headers     []string
}

// The downloadable template catalog. Header labels must stay in sync with
// what the bulk row mapper reads.
var templateCatalog = []templateDefinition{
	{
		ID:          1,
		Name:        "Enrollment Student",
		Description: "Template used to enroll students with their guardians into rooms",
		Headers: []string{
			dto.ColStudentFirstName,
			dto.ColStudentLastName,
			dto.ColStudentEmail,
			dto.ColGuardianFirst,
			dto.ColGuardianLast,
			dto.ColGuardianEmail,
			dto.ColGuardianDocType,
			dto.ColGuardianDocNum,
			dto.ColGuardianCountry,
			dto.ColRoomID,
		},
	},
	{
		ID:          2,
		Name:        "Update Data Student_Guardian",
		Description: "Template used to update data of existing students and guardians",
		Headers: []string{
			dto.ColStudentID,
			dto.ColStudentFirstName,
			dto.ColStudentLastName,
			dto.ColStudentEmail,
			dto.ColGuardianID,
			dto.ColGuardianFirst,
			dto.ColGuardianLast,
			dto.ColGuardianEmail,
			dto.ColGuardianDocType,
			dto.ColGuardianDocNum,
			dto.ColGuardianCountry,
		},
	},
}

// TemplateService serves the spreadsheet template catalog.
type TemplateService struct {
	logger *zap.Logger
}

// NewTemplateService constructs TemplateService.
func NewTemplateService(logger *zap.Logger) *TemplateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateService{logger: logger}
}

// List returns the catalog of downloadable templates.
func (s *TemplateService) List() []dto.TemplateInfo {
	infos := make([]dto.TemplateInfo, 0, len(templateCatalog))
	for _, tpl := range templateCatalog {
		infos = append(infos, dto.TemplateInfo{ID: tpl.ID, Name: tpl.Name, Description: tpl.Description})
	}
	return infos
}

// Generate renders the workbook for the given template ID.
func (s *TemplateService) Generate(id int64) (*TemplateFile, error) {
	for _, tpl := range templateCatalog {
		if tpl.ID != id {
			continue
		}
		data, err := spreadsheet.Write(tpl.Headers)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate template workbook")
		}
		return &TemplateFile{
			Filename:    fmt.Sprintf("%s%s", tpl.Name, spreadsheet.Extension),
			ContentType: spreadsheet.ContentType,
			Data:        data,
		}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Template with ID %d not found", id))
}
