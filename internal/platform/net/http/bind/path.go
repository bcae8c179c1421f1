package bind

import (
	"net/http"
	"strconv"
	"strings"

	perr "figurefriday/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// PathInt reads a non-negative integer route parameter
func PathInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be a non-negative integer", name), name)
	}
	return n, nil
}
