package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

// ValidateConfig performs structural validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return lcerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Catalogs))
	for i, path := range cfg.Catalogs {
		if first, ok := seen[path]; ok {
			return lcerrors.NewValidationError(fmt.Sprintf("catalogs[%d]", i), fmt.Sprintf("duplicate of catalogs[%d]", first), nil)
		}
		seen[path] = i
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return lcerrors.NewValidationError(field, msg, err)
	}

	return lcerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, leaving the
// field path as written in the file, e.g. "render.class_prefix".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
