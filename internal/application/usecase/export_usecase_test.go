package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/EmployeePortal-api/internal/infrastructure/pdf"
	"github.com/jhoicas/EmployeePortal-api/internal/infrastructure/xmlexport"
)

// captureRenderer guarda el documento recibido.
type captureRenderer struct {
	got usecase.RosterDocument
	err error
}

func (r *captureRenderer) Render(_ context.Context, doc usecase.RosterDocument) ([]byte, error) {
	r.got = doc
	return []byte("ok"), r.err
}

func TestExport_FiltraSinPaginarYSumaSalarios(t *testing.T) {
	uc, repo := newEmployeeUC()
	for _, n := range []string{"Jane Doe", "Janet Roe", "John Smith", "Mary Jane", "Jane Seven", "Jane Six"} {
		seed(t, uc, n)
	}
	capture := &captureRenderer{}
	export := usecase.NewExportUseCase(repo, capture, capture)

	out, err := export.Export(context.Background(), "XML", dto.EmployeeListQuery{SearchTerm: "jane", PageSize: 2, PageNumber: 2}, "admin@example.com")
	require.NoError(t, err)

	assert.Len(t, capture.got.Employees, 5, "la exportación ignora la paginación")
	assert.Equal(t, "250000.00", capture.got.TotalSalary)
	assert.Equal(t, "admin@example.com", capture.got.GeneratedBy)
	assert.Equal(t, "jane", capture.got.SearchTerm)
	assert.Equal(t, "application/xml; charset=utf-8", out.ContentType)
	assert.True(t, strings.HasPrefix(out.Filename, "employees-"))
	assert.True(t, strings.HasSuffix(out.Filename, ".xml"))
}

func TestExport_FormatoPorDefectoPDF(t *testing.T) {
	uc, repo := newEmployeeUC()
	seed(t, uc, "Jane Doe")
	export := usecase.NewExportUseCase(repo, infrapdf.NewMarotoPDFGenerator("test"), xmlexport.NewRosterXMLBuilder())

	out, err := export.Export(context.Background(), "", dto.EmployeeListQuery{}, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.True(t, strings.HasSuffix(out.Filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(out.Content, []byte("%PDF")))
}

func TestExport_XMLReal(t *testing.T) {
	uc, repo := newEmployeeUC()
	seed(t, uc, "Jane Doe", "John Smith")
	export := usecase.NewExportUseCase(repo, infrapdf.NewMarotoPDFGenerator("test"), xmlexport.NewRosterXMLBuilder())

	out, err := export.Export(context.Background(), "xml", dto.EmployeeListQuery{SelectedDepartment: "IT"}, "admin@example.com")
	require.NoError(t, err)
	xml := string(out.Content)
	assert.Contains(t, xml, `<EmployeeRoster`)
	assert.Contains(t, xml, `count="2"`)
	assert.Contains(t, xml, `<FullName>John Smith</FullName>`)
	assert.Contains(t, xml, `department="IT"`)
}

func TestExport_FormatoNoSoportado(t *testing.T) {
	_, repo := newEmployeeUC()
	capture := &captureRenderer{}
	export := usecase.NewExportUseCase(repo, capture, capture)

	_, err := export.Export(context.Background(), "csv", dto.EmployeeListQuery{}, "")
	assert.Equal(t, "Supported formats are pdf and xml.", validationFields(t, err)["format"])
}

func TestExport_ErrorDelRenderer(t *testing.T) {
	_, repo := newEmployeeUC()
	boom := errors.New("boom")
	export := usecase.NewExportUseCase(repo, &captureRenderer{err: boom}, nil)

	_, err := export.Export(context.Background(), "pdf", dto.EmployeeListQuery{}, "")
	assert.ErrorIs(t, err, boom)

	_, err = export.Export(context.Background(), "xml", dto.EmployeeListQuery{}, "")
	assert.Error(t, err, "sin renderer xml el formato no está disponible")
}
