package api

import (
	"bytes"
	"compress/gzip"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/google/uuid"

	"github.com/fulldump/usersvc/database"
	"github.com/fulldump/usersvc/service"
)

func TestInterceptors(t *testing.T) {

	biff.Alternative("Interceptors", func(a *biff.A) {

		db := database.NewDatabase(&database.Config{})
		accessLog := &syncBuffer{}

		b := Build(service.NewService(db), []byte("index"))
		b.WithInterceptors(
			RequestID,
			AccessLog(log.New(accessLog, "ACCESS: ", 0)),
			Compression,
			PrettyErrorInterceptor,
			RecoverFromPanic,
			InterceptorUnavailable(db),
		)

		api := apitest.NewWithHandler(b)
		defer api.Destroy()

		a.Alternative("Opening database is unavailable", func(a *biff.A) {
			resp := api.Request("GET", "/users").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)
			biff.AssertEqualJson(resp.BodyJson(), map[string]any{
				"error": map[string]any{
					"message":     "temporary unavailable: opening",
					"description": "service is starting or shutting down, retry later",
				},
			})
		})

		a.Alternative("Operating", func(a *biff.A) {
			biff.AssertNil(db.Load())

			a.Alternative("Request id", func(a *biff.A) {
				resp := api.Request("GET", "/users").Do()
				resp.BodyClose()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				_, err := uuid.Parse(resp.Header.Get(HeaderRequestID))
				biff.AssertNil(err)
			})

			a.Alternative("Access log", func(a *biff.A) {
				resp := api.Request("GET", "/nope").Do()
				resp.BodyClose()

				line := accessLog.String()
				biff.AssertTrue(strings.HasPrefix(line, "ACCESS: "))
				biff.AssertTrue(strings.Contains(line, " GET /nope 404 "))
				biff.AssertTrue(strings.Contains(line, resp.Header.Get(HeaderRequestID)))
			})

			a.Alternative("Panic", func(a *biff.A) {
				b := Build(panicService{}, nil)
				b.WithInterceptors(
					PrettyErrorInterceptor,
					RecoverFromPanic,
				)
				api := apitest.NewWithHandler(b)
				defer api.Destroy()

				resp := api.Request("GET", "/users").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusInternalServerError)
				biff.AssertEqualJson(resp.BodyJson(), map[string]any{
					"error": map[string]any{
						"message":     "panic: boom",
						"description": "Unexpected error",
					},
				})
			})

			a.Alternative("Compression", func(a *biff.A) {
				resp := api.Request("GET", "/").
					WithHeader("Accept-Encoding", "gzip").
					Do()
				defer resp.BodyClose()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.Header.Get("Content-Encoding"), "gzip")

				gz, err := gzip.NewReader(resp.Body)
				biff.AssertNil(err)
				body, err := io.ReadAll(gz)
				biff.AssertNil(err)
				biff.AssertEqual(string(body), "index")
			})

			a.Alternative("No compression", func(a *biff.A) {
				resp := api.Request("GET", "/").
					WithHeader("Accept-Encoding", "identity").
					Do()

				biff.AssertEqual(resp.Header.Get("Content-Encoding"), "")
				biff.AssertEqual(resp.BodyString(), "index")
			})
		})

		a.Alternative("Closing database is unavailable", func(a *biff.A) {
			biff.AssertNil(db.Load())
			biff.AssertNil(db.Stop())

			resp := api.Request("POST", "/user/").Do()
			resp.BodyClose()
			biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)
		})
	})
}

type panicService struct {
	service.Servicer
}

func (panicService) ListUsers() []int {
	panic("boom")
}

type syncBuffer struct {
	mutex sync.Mutex
	buf   bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buf.String()
}
