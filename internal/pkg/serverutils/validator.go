package serverutils

import (
	"github.com/go-playground/validator/v10"

	"business-chat-be/internal/apperrors"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and reports failures as
// validation errors so the middleware maps them to 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperrors.NewValidation("invalid request: %v", err)
	}
	return nil
}
