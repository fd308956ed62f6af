package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/precinct-records/pkg/ctxutil"
)

// headerGuard records whether the handler already started its response.
type headerGuard struct {
	http.ResponseWriter
	started bool
}

func (g *headerGuard) WriteHeader(code int) {
	g.started = true
	g.ResponseWriter.WriteHeader(code)
}

func (g *headerGuard) Write(b []byte) (int, error) {
	g.started = true
	return g.ResponseWriter.Write(b)
}

func (g *headerGuard) Unwrap() http.ResponseWriter { return g.ResponseWriter }

// Recovery turns a handler panic into a logged JSON 500. If the response was
// already started the connection is left to the server to close.
// http.ErrAbortHandler is re-raised untouched.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g := &headerGuard{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				attrs := []any{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("stack", string(debug.Stack())),
				}
				if uid, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
					attrs = append(attrs, slog.String("user_id", uid.String()))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !g.started {
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(g, r)
		})
	}
}
