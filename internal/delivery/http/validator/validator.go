// Package validator wires go-playground/validator into echo's binding flow.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator implements echo.Validator on top of go-playground/validator.
type requestValidator struct {
	validate *playground.Validate
}

// New creates the validator used for `validate:` struct tags on request DTOs.
func New() echo.Validator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct and converts violations into a
// 400 the error handler can render.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
