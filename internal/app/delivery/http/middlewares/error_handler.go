package middlewares

import (
	"errors"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/utils"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in a handler into the standard error envelope
// and logs it with the request it happened in.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			var err error
			switch x := rec.(type) {
			case error:
				err = x
			case string:
				err = errors.New(x)
			default:
				err = fmt.Errorf("panic: %v", x)
			}

			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Error("Middlewares.ErrorHandler recovered panic",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
				zap.Stack("stacktrace"),
			)

			utils.BuildErrorResponse(m.Log, w, err)
		}()
		next.ServeHTTP(w, r)
	})
}
