package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fulldump/box"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

func RecoverFromPanic(next box.H) box.H {
	return func(ctx context.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Println("ERROR: panic:", err)
				debug.PrintStack()
				box.SetError(ctx, fmt.Errorf("%w: %v", ErrPanic, err))
			}
		}()
		next(ctx)
	}
}

// RequestID tags every response with a fresh uuid
func RequestID(next box.H) box.H {
	return func(ctx context.Context) {
		box.GetResponse(ctx).Header().Set(HeaderRequestID, uuid.NewString())
		next(ctx)
	}
}

func AccessLog(l *log.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			c := box.GetBoxContext(ctx)
			w := &statusRecorder{ResponseWriter: c.Response, status: http.StatusOK}
			c.Response = w

			now := time.Now()
			defer func() {
				l.Println(now.UTC().Format(time.RFC3339Nano), formatRemoteAddr(r), r.Method, r.URL.String(), w.status, w.Header().Get(HeaderRequestID), time.Since(now))
			}()

			next(ctx)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	i := strings.LastIndex(r.RemoteAddr, ":")
	if i < 0 {
		return r.RemoteAddr
	}
	return r.RemoteAddr[0:i]
}
