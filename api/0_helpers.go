package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json"

	"github.com/fulldump/usersvc/database"
)

var (
	ErrUnavailable = errors.New("temporary unavailable")
	ErrPanic       = errors.New("panic")
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.MarshalWrite(w, map[string]PrettyError{"error": p})
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status != database.StatusOperating {
				box.SetError(ctx, fmt.Errorf("%w: %s", ErrUnavailable, status))
				return
			}
			next(ctx)
		}
	}
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}

		status := http.StatusInternalServerError
		description := "Unexpected error"

		switch {
		case errors.Is(err, ErrUnavailable):
			status = http.StatusServiceUnavailable
			description = "service is starting or shutting down, retry later"
		case errors.Is(err, box.ErrResourceNotFound):
			status = http.StatusNotFound
			description = fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
		case errors.Is(err, box.ErrMethodNotAllowed):
			status = http.StatusMethodNotAllowed
			description = fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
		}

		w := box.GetResponse(ctx)
		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}
