package config

import (
	"errors"
	"strings"

	"github.com/aleister1102/sitemapdiff/internal/errorwrapper"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var messages []string
			for _, e := range errs {
				messages = append(messages, e.StructNamespace()+" failed on '"+e.Tag()+"'")
			}
			return errorwrapper.NewError("config validation failed: %s", strings.Join(messages, "; "))
		}
		return errorwrapper.WrapError(err, "config validation failed")
	}

	if cfg.CompareConfig.LabelA == "" || cfg.CompareConfig.LabelB == "" {
		return errorwrapper.NewValidationError("compare_config.labels", cfg.CompareConfig, "side labels must not be empty")
	}

	if cfg.ReporterConfig.OutputFile == "" {
		return errorwrapper.NewValidationError("reporter_config.output_file", cfg.ReporterConfig.OutputFile, "output file must not be empty")
	}

	return nil
}
