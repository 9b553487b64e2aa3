package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/domain"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
)

// RosterDocument contenido de una exportación del roster filtrado.
type RosterDocument struct {
	Title       string
	GeneratedAt time.Time
	GeneratedBy string
	SearchTerm  string
	Department  string
	Type        string
	Employees   []dto.EmployeeResponse
	TotalSalary string
}

// RosterRenderer convierte un RosterDocument en bytes de un formato concreto.
type RosterRenderer interface {
	Render(ctx context.Context, doc RosterDocument) ([]byte, error)
}

// ExportUseCase genera el roster filtrado en PDF o XML.
type ExportUseCase struct {
	repo      repository.EmployeeRepository
	renderers map[string]exportFormat
	now       func() time.Time
}

type exportFormat struct {
	renderer    RosterRenderer
	contentType string
}

// NewExportUseCase construye el caso de uso con los renderizadores de cada formato.
func NewExportUseCase(repo repository.EmployeeRepository, pdf, xml RosterRenderer) *ExportUseCase {
	return &ExportUseCase{
		repo: repo,
		renderers: map[string]exportFormat{
			dto.ExportFormatPDF: {renderer: pdf, contentType: "application/pdf"},
			dto.ExportFormatXML: {renderer: xml, contentType: "application/xml; charset=utf-8"},
		},
		now: time.Now,
	}
}

// Export aplica los mismos filtros del listado (sin paginar) y renderiza en el formato pedido.
func (uc *ExportUseCase) Export(ctx context.Context, format string, q dto.EmployeeListQuery, generatedBy string) (*dto.ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = dto.ExportFormatPDF
	}
	f, ok := uc.renderers[format]
	if !ok || f.renderer == nil {
		verr := domain.NewValidationError()
		verr.Add("format", "Supported formats are pdf and xml.")
		return nil, verr
	}

	filter := FilterFromQuery(q)
	items, err := uc.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	doc := RosterDocument{
		Title:       "Employee Roster",
		GeneratedAt: now,
		GeneratedBy: generatedBy,
		SearchTerm:  filter.SearchTerm,
		Employees:   make([]dto.EmployeeResponse, 0, len(items)),
	}
	if filter.Department != nil {
		doc.Department = string(*filter.Department)
	}
	if filter.Type != nil {
		doc.Type = string(*filter.Type)
	}
	total := decimal.Zero
	for _, e := range items {
		total = total.Add(e.Salary)
		doc.Employees = append(doc.Employees, *toEmployeeResponse(e))
	}
	doc.TotalSalary = total.StringFixed(entity.SalaryScale)

	content, err := f.renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	return &dto.ExportResult{
		Filename:    fmt.Sprintf("employees-%s.%s", now.Format("20060102-150405"), format),
		ContentType: f.contentType,
		Content:     content,
	}, nil
}
