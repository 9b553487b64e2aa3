package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/EmployeePortal-api/internal/application/auth"
)

func TestDefaultPasswordPolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     []string
	}{
		{"válida", "Admin123", nil},
		{"válida mínima", "aB3def", nil},
		{"corta", "aB3", []string{"Passwords must be at least 6 characters."}},
		{"sin dígito", "Abcdefg", []string{"Passwords must have at least one digit ('0'-'9')."}},
		{"sin minúscula", "ABC123", []string{"Passwords must have at least one lowercase ('a'-'z')."}},
		{"sin mayúscula", "abc123", []string{"Passwords must have at least one uppercase ('A'-'Z')."}},
		{"vacía", "", []string{
			"Passwords must be at least 6 characters.",
			"Passwords must have at least one digit ('0'-'9').",
			"Passwords must have at least one lowercase ('a'-'z').",
			"Passwords must have at least one uppercase ('A'-'Z').",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, auth.DefaultPasswordPolicy.Validate(tc.password))
		})
	}
}

func TestPasswordPolicy_Simbolo(t *testing.T) {
	p := auth.PasswordPolicy{MinLength: 4, RequireSymbol: true}
	assert.Equal(t, []string{"Passwords must have at least one non alphanumeric character."}, p.Validate("abcd"))
	assert.Empty(t, p.Validate("ab-d"))
}

func TestPasswordPolicy_Message(t *testing.T) {
	assert.Equal(t, "", auth.DefaultPasswordPolicy.Message("Admin123"))
	assert.Equal(t,
		"Passwords must have at least one digit ('0'-'9'). Passwords must have at least one uppercase ('A'-'Z').",
		auth.DefaultPasswordPolicy.Message("abcdefg"))
}
