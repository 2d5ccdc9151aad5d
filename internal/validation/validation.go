// Package validation checks tagged input structs and reports domain validation errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Validator returns the shared validator. Field names are taken from json tags.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				name = field.Name
			}

			return name
		})
	})

	return instance
}

// Struct validates input and converts failures into *domainerrors.ValidationError.
func Struct(input any) error {
	err := Validator().Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Wrap(err, "validation could not run")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}

	return domainerrors.NewValidationError(violations...)
}

// fieldPath drops the top-level struct name: "CreateReviewInput.imagenes[0]" becomes "imagenes[0]".
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}

		return fmt.Sprintf("debe ser como mínimo %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
		}

		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual que %s", fe.Param())
	case "lte":
		return fmt.Sprintf("debe ser menor o igual que %s", fe.Param())
	case "url", "http_url":
		return "debe ser una URL válida"
	case "uuid":
		return "debe ser un identificador válido"
	}

	return "no es válido"
}
