package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; las reglas viven en los tags de los DTOs.
var validate = validator.New()

// validationMessage arma un mensaje legible a partir de los errores de tags
// (campo y regla violada), para el cuerpo 422.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "datos inválidos"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: regla '%s'", fe.Field(), fe.Tag()))
	}
	return "datos inválidos: " + strings.Join(parts, "; ")
}
