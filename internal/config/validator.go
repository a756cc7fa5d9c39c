package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the loaded values against the struct tags on Config.
// Every failing field is reported in a single error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s=%v fails %q", fe.Field(), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

// Warnings reports settings that are valid but suspicious for the environment
func (c *Config) Warnings() []string {
	if c.IsDevelopment() || c.Environment == "test" {
		return nil
	}

	var warnings []string
	if c.DBPassword == DefaultDBPassword {
		warnings = append(warnings, WarnMsgDefaultDBPassword)
	}
	if slices.Contains(c.CORSAllowedOrigins, "*") {
		warnings = append(warnings, WarnMsgWildcardCORS)
	}
	if c.RunMigrations && c.IsProduction() {
		warnings = append(warnings, WarnMsgMigrationsInProd)
	}
	return warnings
}
