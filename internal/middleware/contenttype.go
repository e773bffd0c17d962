package middleware

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
)

// RequireJSON rejects POST and PUT requests under pathPrefix whose body is
// not declared as application/json. Media type parameters such as charset
// are accepted.
func RequireJSON(pathPrefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !carriesBody(r.Method) || !underPrefix(r.URL.Path, pathPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			if isJSONMediaType(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}

			LoggerFromContext(r.Context()).Debug("rejected request content type",
				"content_type", r.Header.Get("Content-Type"),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnsupportedMediaType)
			//nolint:errcheck // Best effort response writing
			json.NewEncoder(w).Encode(map[string]string{
				"error":   "unsupported_media_type",
				"message": "Content-Type must be application/json",
			})
		})
	}
}

func carriesBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isJSONMediaType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
