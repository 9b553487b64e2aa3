package entity

// positionsByDepartment es la tabla fija de cargos por departamento. Solo lectura.
var positionsByDepartment = map[Department][]string{
	DepartmentIT:    {"Software Developer", "System Administrator", "Network Engineer"},
	DepartmentHR:    {"HR Specialist", "HR Manager", "Talent Acquisition Coordinator"},
	DepartmentSales: {"Sales Executive", "Sales Manager", "Account Executive"},
	DepartmentAdmin: {"Office Manager", "Executive Assistant", "Receptionist"},
}

// PositionsFor devuelve una copia de los cargos del departamento; vacío si no existe.
func PositionsFor(d Department) []string {
	src, ok := positionsByDepartment[d]
	if !ok {
		return []string{}
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
