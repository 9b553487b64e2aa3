package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/application/usecase"
	"github.com/jhoicas/EmployeePortal-api/internal/domain"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
	"github.com/jhoicas/EmployeePortal-api/internal/infrastructure/memory"
)

func newEmployeeUC() (*usecase.EmployeeUseCase, *memory.EmployeeRepo) {
	repo := memory.NewEmployeeRepository(memory.NewStore())
	return usecase.NewEmployeeUseCase(repo, nil), repo
}

func validRequest(name string) dto.EmployeeRequest {
	return dto.EmployeeRequest{
		FullName:   name,
		Email:      "",
		Department: "IT",
		Type:       "FullTime",
		Position:   "Software Developer",
		Salary:     "50000",
	}
}

func seed(t *testing.T, uc *usecase.EmployeeUseCase, names ...string) {
	t.Helper()
	for _, n := range names {
		_, err := uc.Create(context.Background(), validRequest(n))
		require.NoError(t, err)
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, llegó %v", err)
	return verr.Fields
}

func TestList_Paginacion(t *testing.T) {
	uc, _ := newEmployeeUC()
	for i := 1; i <= 12; i++ {
		seed(t, uc, fmt.Sprintf("Empleado %02d", i))
	}
	ctx := context.Background()

	want := []int{5, 5, 2, 0}
	for i, n := range want {
		out, err := uc.List(ctx, dto.EmployeeListQuery{PageNumber: i + 1, PageSize: 5})
		require.NoError(t, err)
		assert.Len(t, out.Items, n, "página %d", i+1)
		assert.Equal(t, 12, out.TotalCount)
		assert.Equal(t, 3, out.TotalPages)
	}

	first, err := uc.List(ctx, dto.EmployeeListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.PageNumber)
	assert.Equal(t, 5, first.PageSize)
	assert.False(t, first.HasPrevious)
	assert.True(t, first.HasNext)
	assert.Equal(t, "Empleado 01", first.Items[0].FullName)
	assert.Equal(t, usecase.PageSizeOptions, first.PageSizeOptions)

	last, err := uc.List(ctx, dto.EmployeeListQuery{PageNumber: 3, PageSize: 5})
	require.NoError(t, err)
	assert.True(t, last.HasPrevious)
	assert.False(t, last.HasNext)
}

func TestList_PaginaNoPositivaUsaDefaults(t *testing.T) {
	uc, _ := newEmployeeUC()
	out, err := uc.List(context.Background(), dto.EmployeeListQuery{PageSize: -1, PageNumber: -2})
	require.NoError(t, err)
	assert.Equal(t, repository.DefaultPageSize, out.PageSize)
	assert.Equal(t, 1, out.PageNumber)
	assert.Zero(t, out.TotalPages)
	assert.NotNil(t, out.Items)
}

func TestList_TamanoDePaginaSinTope(t *testing.T) {
	uc, _ := newEmployeeUC()
	for i := 1; i <= 120; i++ {
		seed(t, uc, fmt.Sprintf("Empleado %03d", i))
	}

	out, err := uc.List(context.Background(), dto.EmployeeListQuery{PageSize: 200})
	require.NoError(t, err)
	assert.Equal(t, 200, out.PageSize)
	assert.Len(t, out.Items, 120)
	assert.Equal(t, 120, out.TotalCount)
	assert.Equal(t, 1, out.TotalPages)
	assert.False(t, out.HasNext)
}

func TestList_BusquedaYFiltros(t *testing.T) {
	uc, _ := newEmployeeUC()
	seed(t, uc, "Jane Doe", "John Smith", "Mary JANE Watson")
	hr := validRequest("Janet HR")
	hr.Department = "HR"
	hr.Position = "HR Manager"
	hr.Type = "Intern"
	_, err := uc.Create(context.Background(), hr)
	require.NoError(t, err)
	ctx := context.Background()

	out, err := uc.List(ctx, dto.EmployeeListQuery{SearchTerm: "  jane "})
	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalCount)
	assert.Equal(t, "jane", out.SearchTerm)

	out, err = uc.List(ctx, dto.EmployeeListQuery{SearchTerm: "jane", SelectedDepartment: "it"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalCount)
	assert.Equal(t, "IT", out.SelectedDepartment)

	out, err = uc.List(ctx, dto.EmployeeListQuery{SelectedType: "3"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalCount)
	assert.Equal(t, "Intern", out.SelectedType)
}

func TestList_DepartamentoInvalidoSeIgnora(t *testing.T) {
	uc, _ := newEmployeeUC()
	seed(t, uc, "Uno", "Dos")

	out, err := uc.List(context.Background(), dto.EmployeeListQuery{SelectedDepartment: "Finance", SelectedType: "Freelance"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalCount)
	assert.Empty(t, out.SelectedDepartment)
	assert.Empty(t, out.SelectedType)
}

func TestCreate_RedondeaSalario(t *testing.T) {
	uc, _ := newEmployeeUC()
	in := validRequest("Ana")
	in.Salary = "1234.567"
	in.Email = "ana@example.com"

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "1234.57", out.Salary)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCreate_Validaciones(t *testing.T) {
	uc, repo := newEmployeeUC()
	cases := []struct {
		name   string
		mutate func(*dto.EmployeeRequest)
		field  string
		msg    string
	}{
		{"nombre vacío", func(r *dto.EmployeeRequest) { r.FullName = "  " }, "FullName", "The FullName field is required."},
		{"email inválido", func(r *dto.EmployeeRequest) { r.Email = "x@" }, "Email", "The Email field is not a valid e-mail address."},
		{"departamento inválido", func(r *dto.EmployeeRequest) { r.Department = "Finance" }, "Department", "Select a valid department."},
		{"tipo inválido", func(r *dto.EmployeeRequest) { r.Type = "" }, "Type", "Select a valid employee type."},
		{"cargo vacío", func(r *dto.EmployeeRequest) { r.Position = "" }, "Position", "The Position field is required."},
		{"salario vacío", func(r *dto.EmployeeRequest) { r.Salary = "" }, "Salary", "The Salary field is required."},
		{"salario no numérico", func(r *dto.EmployeeRequest) { r.Salary = "mucho" }, "Salary", "The Salary field must be a number."},
		{"salario negativo", func(r *dto.EmployeeRequest) { r.Salary = "-0.01" }, "Salary", "Salary must be a non-negative value."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRequest("Válido")
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			assert.Equal(t, tc.msg, validationFields(t, err)[tc.field])
		})
	}

	all, err := repo.ListAll(context.Background(), repository.EmployeeFilter{})
	require.NoError(t, err)
	assert.Empty(t, all, "ninguna alta inválida debe persistir")
}

func TestGetByID_Inexistente(t *testing.T) {
	uc, _ := newEmployeeUC()
	_, err := uc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	uc, _ := newEmployeeUC()
	seed(t, uc, "Ana")
	ctx := context.Background()
	before, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)

	in := validRequest("Ana María")
	in.Department = "Sales"
	in.Position = "Sales Manager"
	in.Salary = "61000.5"
	out, err := uc.Update(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.FullName)
	assert.Equal(t, "61000.50", out.Salary)

	after, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sales", after.Department)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestUpdateYDelete_IDInexistenteNoCambiaStore(t *testing.T) {
	uc, repo := newEmployeeUC()
	seed(t, uc, "Ana", "Beto")
	ctx := context.Background()

	_, err := uc.Update(ctx, 99, validRequest("Fantasma"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Delete(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := repo.ListAll(ctx, repository.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana", all[0].FullName)
	assert.Equal(t, "Beto", all[1].FullName)
}

func TestDelete(t *testing.T) {
	uc, _ := newEmployeeUC()
	seed(t, uc, "Ana", "Beto")
	ctx := context.Background()

	out, err := uc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.FullName)

	_, err = uc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPositions(t *testing.T) {
	uc, _ := newEmployeeUC()
	assert.Equal(t, []string{"Software Developer", "System Administrator", "Network Engineer"}, uc.Positions("IT"))
	assert.Equal(t, []string{"HR Specialist", "HR Manager", "Talent Acquisition Coordinator"}, uc.Positions("1"))
	assert.Equal(t, []string{}, uc.Positions("Finance"))
	assert.Equal(t, []string{}, uc.Positions(""))
}

func TestFilterFromQuery(t *testing.T) {
	f := usecase.FilterFromQuery(dto.EmployeeListQuery{SearchTerm: " x ", SelectedDepartment: "admin", SelectedType: "nope"})
	require.NotNil(t, f.Department)
	assert.Equal(t, "Admin", string(*f.Department))
	assert.Nil(t, f.Type)
	assert.Equal(t, "x", f.SearchTerm)
	assert.Equal(t, repository.DefaultPage, f.Page)
	assert.Equal(t, repository.DefaultPageSize, f.PageSize)
}
