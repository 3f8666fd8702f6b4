package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iudanet/learnsync/internal/models"
)

// EmailPattern базовая проверка формата email: что-то@что-то.что-то без пробелов
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLen минимальная длина пароля
const MinPasswordLen = 6

// ValidateEmail проверяет, что email задан и похож на адрес
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidateRole проверяет роль, пустая роль допустима и заменяется на роль по умолчанию
func ValidateRole(role models.Role) error {
	if role == "" || role.Valid() {
		return nil
	}
	return fmt.Errorf("invalid role %q", role)
}

// ValidateRegistration проверяет обязательные поля регистрации.
// Возвращает первую найденную ошибку.
func ValidateRegistration(email, password, firstName, lastName string, role models.Role) error {
	required := []struct {
		name  string
		value string
	}{
		{"email", email},
		{"password", password},
		{"first name", firstName},
		{"last name", lastName},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}

	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	return ValidateRole(role)
}

// NormalizeEmail приводит email к виду, в котором он хранится
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
