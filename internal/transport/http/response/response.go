package response

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/you-humble/noventa-support/platform/logger"
)

type Error struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "write json response", logger.ErrorF(err))
	}
}

// RedirectHome sends the browser back to the landing page with an error flag.
func RedirectHome(w http.ResponseWriter, r *http.Request, flag string, extra url.Values) {
	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	q.Set("error", flag)

	http.Redirect(w, r, "/?"+q.Encode(), http.StatusFound)
}
