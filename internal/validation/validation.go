// Package validation holds the shared struct validator used by the theme and
// content loaders.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	deckerrors "github.com/VantageDataChat/pitchdeck/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)
	yamlLineRegex   = regexp.MustCompile(`line (\d+)`)
)

// Instance returns the process-wide validator with the custom tags
// registered:
//
//	hexcolor6  six hex digits with an optional leading '#'
//	colortag   one of the theme tag names
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("colortag", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case "accent", "accent_alt", "positive", "negative", "warning", "highlight":
				return true
			}
			return false
		})

		validateInst = v
	})
	return validateInst
}

// Struct validates s and converts the first failure to a ValidationError.
func Struct(s any) error {
	if err := Instance().Struct(s); err != nil {
		return Convert(err)
	}
	return nil
}

// Convert turns validator output into a *errors.ValidationError naming the
// offending field in lower-case dotted form.
func Convert(err error) error {
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return deckerrors.NewValidationError(field, msg, err)
	}
	return deckerrors.NewValidationError("", err.Error(), err)
}

// fieldName drops the root struct name from the namespace and lowers the rest:
// "themeFile.Palette[tint.accent]" becomes "palette[tint.accent]".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if j := strings.IndexByte(part, '['); j >= 0 {
			parts[i] = strings.ToLower(part[:j]) + part[j:]
			continue
		}
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

// ExtractLine pulls the line number out of a yaml.v3 error message, or 0.
func ExtractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
