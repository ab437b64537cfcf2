package api

import (
	"net/http"
	"testing"

	"github.com/fulldump/usersvc/database"
	"github.com/fulldump/usersvc/service"
)

func newTestDispatcher() *Dispatcher {
	db := database.NewDatabase(&database.Config{})
	return &Dispatcher{
		Service: service.NewService(db),
		Index:   []byte("<title>index</title>"),
	}
}

func TestDispatch_Scenario(t *testing.T) {

	d := newTestDispatcher()

	steps := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{"GET", "/", http.StatusOK, "<title>index</title>"},
		{"GET", "/users", http.StatusOK, ""},
		{"POST", "/user/", http.StatusOK, "0"},
		{"GET", "/user/0", http.StatusOK, "{}"},
		{"PUT", "/user/0", http.StatusOK, ""},
		{"DELETE", "/user/0", http.StatusOK, ""},
		{"GET", "/user/0", http.StatusNotFound, ""},
		{"POST", "/user/5", http.StatusBadRequest, ""},
		{"GET", "/user/abc", http.StatusNotFound, ""},
		{"GET", "/nope", http.StatusNotFound, ""},
	}

	for i, s := range steps {
		resp := d.Dispatch(s.method, s.path)
		if resp.Status != s.status {
			t.Fatalf("step %d %s %s: expected status %d, got %d", i, s.method, s.path, s.status, resp.Status)
		}
		if string(resp.Body) != s.body {
			t.Fatalf("step %d %s %s: expected body %q, got %q", i, s.method, s.path, s.body, resp.Body)
		}
	}
}

func TestDispatch_StatusPolicy(t *testing.T) {

	d := newTestDispatcher()
	d.Service.CreateUser(nil) // id 0

	cases := []struct {
		method string
		path   string
		status int
	}{
		{"POST", "/", http.StatusMethodNotAllowed},
		{"DELETE", "/index.html", http.StatusMethodNotAllowed},
		{"POST", "/users", http.StatusMethodNotAllowed},
		{"PUT", "/users/", http.StatusMethodNotAllowed},
		{"POST", "/user/abc", http.StatusBadRequest},
		{"POST", "/user/0/", http.StatusBadRequest},
		{"GET", "/user/", http.StatusNotFound},
		{"PUT", "/user/", http.StatusNotFound},
		{"DELETE", "/user/", http.StatusNotFound},
		{"PUT", "/user/x", http.StatusNotFound},
		{"DELETE", "/user/99999999999999999999", http.StatusNotFound},
		{"PUT", "/user/1", http.StatusNotFound},
		{"DELETE", "/user/1", http.StatusNotFound},
		{"PATCH", "/user/0", http.StatusMethodNotAllowed},
		{"HEAD", "/user/", http.StatusMethodNotAllowed},
		{"GET", "/user/0/", http.StatusOK},
		{"POST", "/nope", http.StatusNotFound},
		{"GET", "/user", http.StatusNotFound},
	}

	for _, c := range cases {
		resp := d.Dispatch(c.method, c.path)
		if resp.Status != c.status {
			t.Fatalf("%s %s: expected status %d, got %d", c.method, c.path, c.status, resp.Status)
		}
	}
}

func TestDispatch_ListUsers(t *testing.T) {

	d := newTestDispatcher()

	for i := 0; i < 4; i++ {
		d.Dispatch("POST", "/user/")
	}
	d.Dispatch("DELETE", "/user/2")

	resp := d.Dispatch("GET", "/users/")
	if string(resp.Body) != "0,1,3" {
		t.Fatalf("unexpected list %q", resp.Body)
	}
	if resp.ContentType != contentTypeText {
		t.Fatalf("unexpected content type %q", resp.ContentType)
	}

	resp = d.Dispatch("POST", "/user/")
	if string(resp.Body) != "2" {
		t.Fatalf("expected freed id 2 to be reused, got %q", resp.Body)
	}
}

type brokenService struct {
	service.Servicer
}

func (brokenService) GetUser(id int) (*database.User, error) {
	return nil, http.ErrHandlerTimeout
}

func TestDispatch_UnexpectedError(t *testing.T) {

	d := &Dispatcher{Service: brokenService{}}

	resp := d.Dispatch("GET", "/user/1")
	if resp.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Status)
	}
}
