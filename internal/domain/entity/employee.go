package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Department clasifica un empleado. Enumeración cerrada.
type Department string

const (
	DepartmentIT    Department = "IT"
	DepartmentHR    Department = "HR"
	DepartmentSales Department = "Sales"
	DepartmentAdmin Department = "Admin"
)

// Departments en orden canónico (el índice es el valor numérico aceptado por ParseDepartment).
var Departments = []Department{DepartmentIT, DepartmentHR, DepartmentSales, DepartmentAdmin}

// EmployeeType clasifica la relación laboral. Enumeración cerrada.
type EmployeeType string

const (
	EmployeeTypeFullTime EmployeeType = "FullTime"
	EmployeeTypePartTime EmployeeType = "PartTime"
	EmployeeTypeContract EmployeeType = "Contract"
	EmployeeTypeIntern   EmployeeType = "Intern"
)

// EmployeeTypes en orden canónico.
var EmployeeTypes = []EmployeeType{EmployeeTypeFullTime, EmployeeTypePartTime, EmployeeTypeContract, EmployeeTypeIntern}

// SalaryScale es la cantidad de decimales con que se almacena el salario.
const SalaryScale = 2

// Employee representa una fila del roster.
type Employee struct {
	ID         int64
	FullName   string
	Email      string
	Department Department
	Type       EmployeeType
	Position   string
	Salary     decimal.Decimal // NUMERIC(18,2)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NormalizeSalary redondea el salario a SalaryScale decimales.
func NormalizeSalary(d decimal.Decimal) decimal.Decimal {
	return d.Round(SalaryScale)
}

// Valid indica si d pertenece a la enumeración.
func (d Department) Valid() bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

// Valid indica si t pertenece a la enumeración.
func (t EmployeeType) Valid() bool {
	for _, v := range EmployeeTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ParseDepartment acepta el nombre (sin distinguir mayúsculas) o el índice numérico.
func ParseDepartment(s string) (Department, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < len(Departments) {
			return Departments[n], true
		}
		return "", false
	}
	for _, v := range Departments {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	return "", false
}

// ParseEmployeeType acepta el nombre (sin distinguir mayúsculas) o el índice numérico.
func ParseEmployeeType(s string) (EmployeeType, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < len(EmployeeTypes) {
			return EmployeeTypes[n], true
		}
		return "", false
	}
	for _, v := range EmployeeTypes {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	return "", false
}
