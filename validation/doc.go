// Package validation validates configuration structs using struct tags.
//
// Tags from github.com/go-playground/validator are supported, plus:
//
//	specials  non-empty special-character set without whitespace
//
// Failures are reported as an INVALID_CONFIGURATION errors.AppError whose
// "fields" detail lists each offending field.
//
//	type Config struct {
//	    Specials      string `mapstructure:"specials" validate:"specials"`
//	    MinimumLength int    `mapstructure:"minimum_length" validate:"min=1"`
//	}
//	err := validation.Validate(cfg)
package validation
