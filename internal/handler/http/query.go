package http

import (
	"net/http"
	"strconv"
)

// queryString returns a pointer to the query parameter value, or nil
// when the parameter is absent or blank.
func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(key))
	return v
}
