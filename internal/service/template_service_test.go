package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Walbert29/student-management/internal/dto"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
	"github.com/Walbert29/student-management/pkg/spreadsheet"
)

func TestTemplateList(t *testing.T) {
	svc := NewTemplateService(nil)

	infos := svc.List()
	require.Len(t, infos, 2)
	assert.Equal(t, "Enrollment Student", infos[0].Name)
	assert.Equal(t, "Update Data Student_Guardian", infos[1].Name)
}

func TestTemplateGenerate(t *testing.T) {
	svc := NewTemplateService(nil)

	tpl, err := svc.Generate(1)
	require.NoError(t, err)
	assert.Equal(t, "Enrollment Student.xlsx", tpl.Filename)
	assert.Equal(t, spreadsheet.ContentType, tpl.ContentType)

	header, rows, err := spreadsheet.ReadRows(bytes.NewReader(tpl.Data))
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Contains(t, header, dto.ColStudentFirstName)
	assert.Contains(t, header, dto.ColRoomID)
	assert.NotContains(t, header, dto.ColStudentID)
}

func TestTemplateGenerateUpdate(t *testing.T) {
	svc := NewTemplateService(nil)

	tpl, err := svc.Generate(2)
	require.NoError(t, err)

	header, _, err := spreadsheet.ReadRows(bytes.NewReader(tpl.Data))
	require.NoError(t, err)
	assert.Contains(t, header, dto.ColStudentID)
	assert.Contains(t, header, dto.ColGuardianID)
	assert.NotContains(t, header, dto.ColRoomID)
}

func TestTemplateGenerateUnknown(t *testing.T) {
	svc := NewTemplateService(nil)

	_, err := svc.Generate(9)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Template with ID 9 not found", appErr.Message)
}
