package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractPathParam retrieves a named path parameter from the request
// context and removes file extensions like ".json" or ".png".
func ExtractPathParam(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName(paramName)
	raw = strings.Split(raw, ".json")[0]
	return strings.Split(raw, ".png")[0]
}
