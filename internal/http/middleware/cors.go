package middleware

import "net/http"

// CORS answers preflight and tags responses with the allow-list. An
// origin outside the list gets the first allowed origin's headers, so
// the browser blocks it without the server leaking which origins are
// accepted.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(allowedOrigins) > 0 {
				origin := r.Header.Get("Origin")
				allowed := allowedOrigins[0]
				for _, candidate := range allowedOrigins {
					if candidate == origin {
						allowed = origin
						break
					}
				}
				w.Header().Set("Access-Control-Allow-Origin", allowed)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
