package config

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidOutput indicates an unsupported output encoding.
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidStyle indicates an unsupported delimiter style.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrInvalidIndent indicates an indent outside the accepted range.
	ErrInvalidIndent = errors.New("indent must be between 0 and 8")

	// ErrInvalidFileSize indicates a non-positive size limit.
	ErrInvalidFileSize = errors.New("max_file_size must be positive")
)

// Outputs lists the accepted values for Config.Output.
var Outputs = []string{"json", "yaml"}

// Styles lists the accepted values for Config.Style.
var Styles = []string{"yaml", "toml", "json"}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if !slices.Contains(Outputs, cfg.Output) {
		errs = append(errs, &FieldError{Field: "output", Value: cfg.Output, Err: ErrInvalidOutput})
	}

	if !slices.Contains(Styles, cfg.Style) {
		errs = append(errs, &FieldError{Field: "style", Value: cfg.Style, Err: ErrInvalidStyle})
	}

	if cfg.Indent < 0 || cfg.Indent > 8 {
		errs = append(errs, ErrInvalidIndent)
	}

	if cfg.MaxFileSize <= 0 {
		errs = append(errs, ErrInvalidFileSize)
	}

	return errs
}

// FieldError represents an invalid value for a named field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
