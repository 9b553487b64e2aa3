package auth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PasswordPolicy reglas de complejidad de contraseñas.
type PasswordPolicy struct {
	MinLength        int
	RequireDigit     bool
	RequireLowercase bool
	RequireUppercase bool
	RequireSymbol    bool
}

// DefaultPasswordPolicy: mínimo 6, dígito, minúscula y mayúscula; sin símbolo obligatorio.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:        6,
	RequireDigit:     true,
	RequireLowercase: true,
	RequireUppercase: true,
}

// Validate devuelve los incumplimientos en orden fijo; vacío si la contraseña es válida.
func (p PasswordPolicy) Validate(password string) []string {
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		default:
			hasSymbol = true
		}
	}
	var problems []string
	if utf8.RuneCountInString(password) < p.MinLength {
		problems = append(problems, "Passwords must be at least "+strconv.Itoa(p.MinLength)+" characters.")
	}
	if p.RequireSymbol && !hasSymbol {
		problems = append(problems, "Passwords must have at least one non alphanumeric character.")
	}
	if p.RequireDigit && !hasDigit {
		problems = append(problems, "Passwords must have at least one digit ('0'-'9').")
	}
	if p.RequireLowercase && !hasLower {
		problems = append(problems, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if p.RequireUppercase && !hasUpper {
		problems = append(problems, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	return problems
}

// Message une los incumplimientos en un solo texto para el campo Password.
func (p PasswordPolicy) Message(password string) string {
	return strings.Join(p.Validate(password), " ")
}
