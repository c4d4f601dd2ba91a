package validators

import (
	"fmt"
	"net/http"
	"strconv"

	pkgerrors "github.com/storefront-labs/storefront-backend/pkg/errors"
)

// QueryInt reads a required integer query parameter.
func QueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("query parameter %q is required", name))
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("query parameter %q must be an integer", name))
	}
	return value, nil
}
