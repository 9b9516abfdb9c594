package config

import (
	"strings"

	"github.com/heartmarshall/bidix-patch/internal/domain"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate checks the loaded configuration. Load calls it automatically,
// after overrides have been applied.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(c.Patch.InputFile) == "" {
		errs = append(errs, domain.FieldError{Field: "patch.input_file", Message: "required"})
	}
	if strings.TrimSpace(c.Patch.OutputFile) == "" {
		errs = append(errs, domain.FieldError{Field: "patch.output_file", Message: "must not be empty"})
	}
	if c.Patch.WorkDir == "" {
		c.Patch.WorkDir = "."
	}

	if !oneOf(c.Log.Level, logLevels) {
		errs = append(errs, domain.FieldError{Field: "log.level", Message: "must be one of " + strings.Join(logLevels, ", ")})
	}
	if !oneOf(c.Log.Format, logFormats) {
		errs = append(errs, domain.FieldError{Field: "log.format", Message: "must be one of " + strings.Join(logFormats, ", ")})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func oneOf(s string, allowed []string) bool {
	s = strings.TrimSpace(s)
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return true
		}
	}
	return false
}
