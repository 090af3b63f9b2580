package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	gperrors "github.com/alexisbeaulieu97/giftprogress/pkg/errors"
)

// convertValidationError normalizes validator errors into typed validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return gperrors.NewValidationError(field, msg, err)
	}

	return gperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns a namespace such as Config.gift.BarConfig.max_progress
// into gift.max_progress.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	kept := parts[:0]
	for _, part := range parts {
		if part == "BarConfig" {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, ".")
}
