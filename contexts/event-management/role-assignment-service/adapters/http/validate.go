package httpadapter

import (
	"github.com/go-playground/validator/v10"

	domainerrors "hexclan/contexts/event-management/role-assignment-service/domain/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest runs the declarative tag rules on a transport DTO. Rule
// details stay out of the response on purpose; callers get the generic
// validation sentinel.
func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	return nil
}
