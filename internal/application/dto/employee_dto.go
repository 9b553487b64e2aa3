package dto

import "time"

// EmployeeRequest entrada de alta y edición. Department, Type y Salary llegan como texto
// y se validan en el caso de uso.
type EmployeeRequest struct {
	FullName   string `json:"full_name" form:"FullName"`
	Email      string `json:"email" form:"Email"`
	Department string `json:"department" form:"Department"`
	Type       string `json:"type" form:"Type"`
	Position   string `json:"position" form:"Position"`
	Salary     string `json:"salary" form:"Salary"`
}

// EmployeeResponse salida de un empleado. Salary con dos decimales.
type EmployeeResponse struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email,omitempty"`
	Department string    `json:"department"`
	Type       string    `json:"type"`
	Position   string    `json:"position"`
	Salary     string    `json:"salary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EmployeeListQuery parámetros de /Employee/List y /Employee/Export.
type EmployeeListQuery struct {
	SearchTerm         string `query:"SearchTerm"`
	SelectedDepartment string `query:"SelectedDepartment"`
	SelectedType       string `query:"SelectedType"`
	PageNumber         int    `query:"PageNumber"`
	PageSize           int    `query:"PageSize"`
}

// EmployeeListResponse página del roster con los filtros aplicados.
type EmployeeListResponse struct {
	Items              []EmployeeResponse `json:"items"`
	PageNumber         int                `json:"page_number"`
	PageSize           int                `json:"page_size"`
	TotalCount         int                `json:"total_count"`
	TotalPages         int                `json:"total_pages"`
	HasPrevious        bool               `json:"has_previous"`
	HasNext            bool               `json:"has_next"`
	SearchTerm         string             `json:"search_term"`
	SelectedDepartment string             `json:"selected_department,omitempty"`
	SelectedType       string             `json:"selected_type,omitempty"`
	PageSizeOptions    []int              `json:"page_size_options"`
	Departments        []string           `json:"departments"`
	Types              []string           `json:"types"`
	Flash              *FlashMessage      `json:"flash,omitempty"`
}

// EmployeeSuccessResponse confirmación tras crear o actualizar.
type EmployeeSuccessResponse struct {
	Message  string           `json:"message"`
	Employee EmployeeResponse `json:"employee"`
}
