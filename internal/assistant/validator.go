package assistant

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	app_errors "legalbot/internal/errors"

	"github.com/go-playground/validator/v10"
)

// This file provides a centralized, singleton-based validation helper for
// decoded API responses. The upstream payloads are dynamic JSON; rather than
// trusting them, each response schema declares its required fields in
// `validate` tags and is checked here after decoding. Using a singleton
// avoids recreating the validator instance on every call.

var (
	validate *validator.Validate
	once     sync.Once
)

func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateResponse checks a decoded payload against the validation rules in
// its field tags. A failure means the server sent a structurally valid JSON
// document that is missing required data, which is reported as a
// malformed-response error.
func validateResponse(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: unexpected error during response validation: %s", app_errors.ErrMalformedResponse, err.Error())
	}

	var missing []string
	for _, fieldErr := range validationErrors {
		missing = append(missing, fmt.Sprintf("field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", app_errors.ErrMalformedResponse, strings.Join(missing, "; "))
}
