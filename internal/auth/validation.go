package auth

import (
	"fmt"
	"strings"
	"unicode"
)

// validateRegisterRequest validates the signup request
func validateRegisterRequest(req *RegisterRequest, config *Config) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	return validatePassword(req.Password, config)
}

// validateEmail validates the email format
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	// Note: Basic email validation is handled by gin binding
	return nil
}

// validatePassword validates the password against security rules
func validatePassword(password string, config *Config) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < config.Password.MinLength {
		return fmt.Errorf("password must be at least %d characters long", config.Password.MinLength)
	}
	if len(password) > config.Password.MaxLength {
		return fmt.Errorf("password must be at most %d characters long", config.Password.MaxLength)
	}

	var hasLetter, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if !hasLetter || !hasNumber {
		return fmt.Errorf("password must contain both letters and numbers")
	}
	return nil
}
