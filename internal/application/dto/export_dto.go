package dto

// Formatos de exportación del roster.
const (
	ExportFormatPDF = "pdf"
	ExportFormatXML = "xml"
)

// ExportResult documento generado listo para descargar.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}
