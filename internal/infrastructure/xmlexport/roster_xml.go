// Package xmlexport serializa el roster de empleados como documento XML.
package xmlexport

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/EmployeePortal-api/internal/application/usecase"
)

var _ usecase.RosterRenderer = (*RosterXMLBuilder)(nil)

// RosterXMLBuilder implementa usecase.RosterRenderer con etree.
type RosterXMLBuilder struct {
	indent int
}

// NewRosterXMLBuilder construye el serializador con sangría de 2 espacios.
func NewRosterXMLBuilder() *RosterXMLBuilder {
	return &RosterXMLBuilder{indent: 2}
}

// Render genera:
//
//	<EmployeeRoster generatedAt=".." generatedBy=".." count="N" totalSalary="..">
//	  <Filters searchTerm=".." department=".." type=".."/>
//	  <Employee id="1"><FullName>..</FullName>...</Employee>
//	</EmployeeRoster>
func (b *RosterXMLBuilder) Render(_ context.Context, doc usecase.RosterDocument) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("EmployeeRoster")
	root.CreateAttr("title", doc.Title)
	root.CreateAttr("generatedAt", doc.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("generatedBy", doc.GeneratedBy)
	root.CreateAttr("count", strconv.Itoa(len(doc.Employees)))
	root.CreateAttr("totalSalary", doc.TotalSalary)

	filters := root.CreateElement("Filters")
	filters.CreateAttr("searchTerm", doc.SearchTerm)
	filters.CreateAttr("department", doc.Department)
	filters.CreateAttr("type", doc.Type)

	for _, e := range doc.Employees {
		el := root.CreateElement("Employee")
		el.CreateAttr("id", strconv.FormatInt(e.ID, 10))
		el.CreateElement("FullName").SetText(e.FullName)
		if e.Email != "" {
			el.CreateElement("Email").SetText(e.Email)
		}
		el.CreateElement("Department").SetText(e.Department)
		el.CreateElement("Type").SetText(e.Type)
		el.CreateElement("Position").SetText(e.Position)
		el.CreateElement("Salary").SetText(e.Salary)
		el.CreateElement("CreatedAt").SetText(e.CreatedAt.UTC().Format(time.RFC3339))
		el.CreateElement("UpdatedAt").SetText(e.UpdatedAt.UTC().Format(time.RFC3339))
	}

	x.Indent(b.indent)
	out, err := x.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar roster: %w", err)
	}
	return out, nil
}
