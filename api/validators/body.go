package validators

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/storefront-labs/storefront-backend/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSONBody decodes the request body into dst and runs struct
// validation. Unknown fields are rejected.
func DecodeJSONBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "validation setup failed")
		}

		fields := map[string]string{}
		for _, fieldErr := range validationErrs {
			fields[fieldKey(fieldErr)] = fieldErr.Tag()
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid request body").WithDetails(fields)
	}

	return nil
}

func fieldKey(fieldErr validator.FieldError) string {
	parts := strings.Split(fieldErr.Namespace(), ".")
	if len(parts) == 0 {
		return fieldErr.Field()
	}
	return strings.ToLower(parts[len(parts)-1])
}

// Validate runs struct validation without decoding.
func Validate(dst any) error {
	if err := validate.Struct(dst); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("invalid value: %v", err))
	}
	return nil
}
