package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json"

	"github.com/fulldump/usersvc/database"
	"github.com/fulldump/usersvc/router"
	"github.com/fulldump/usersvc/service"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json"
)

type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Dispatcher turns a (method, path) pair into a Response. Every call runs at
// most one service operation.
type Dispatcher struct {
	Service service.Servicer
	Index   []byte
}

func (d *Dispatcher) Dispatch(method, path string) *Response {

	route := router.Match(path)

	switch route.Kind {
	case router.Index:
		return d.index(method)
	case router.Collection:
		return d.collection(method)
	case router.Item:
		return d.item(method, route)
	}

	return status(http.StatusNotFound)
}

// Handle writes the dispatched response, it is mounted as a box action
func (d *Dispatcher) Handle(ctx context.Context) {

	r := box.GetRequest(ctx)
	w := box.GetResponse(ctx)

	resp := d.Dispatch(r.Method, r.URL.Path)

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.Status)
	w.Write(resp.Body)
}

func (d *Dispatcher) index(method string) *Response {

	if method != http.MethodGet {
		return status(http.StatusMethodNotAllowed)
	}

	return &Response{
		Status:      http.StatusOK,
		ContentType: contentTypeHTML,
		Body:        d.Index,
	}
}

func (d *Dispatcher) collection(method string) *Response {

	if method != http.MethodGet {
		return status(http.StatusMethodNotAllowed)
	}

	ids := d.Service.ListUsers()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return text(strings.Join(parts, ","))
}

func (d *Dispatcher) item(method string, route router.Route) *Response {

	switch method {
	case http.MethodPost:
		if route.Segment != "" {
			// ids are assigned by the server
			return status(http.StatusBadRequest)
		}
		id := d.Service.CreateUser(&database.User{})
		return text(strconv.Itoa(id))

	case http.MethodGet, http.MethodPut, http.MethodDelete:
		if !route.HasID() {
			return status(http.StatusNotFound)
		}

	default:
		return status(http.StatusMethodNotAllowed)
	}

	switch method {
	case http.MethodGet:
		user, err := d.Service.GetUser(route.ID)
		if err != nil {
			return failure(err)
		}
		body, err := json.Marshal(user)
		if err != nil {
			return failure(err)
		}
		return &Response{
			Status:      http.StatusOK,
			ContentType: contentTypeJSON,
			Body:        body,
		}

	case http.MethodPut:
		// request bodies are not interpreted yet, the record is replaced
		// by a blank one
		err := d.Service.ReplaceUser(route.ID, &database.User{})
		if err != nil {
			return failure(err)
		}

	case http.MethodDelete:
		err := d.Service.DeleteUser(route.ID)
		if err != nil {
			return failure(err)
		}
	}

	return status(http.StatusOK)
}

func status(code int) *Response {
	return &Response{Status: code}
}

func text(body string) *Response {
	return &Response{
		Status:      http.StatusOK,
		ContentType: contentTypeText,
		Body:        []byte(body),
	}
}

func failure(err error) *Response {
	if errors.Is(err, service.ErrorUserNotFound) {
		return status(http.StatusNotFound)
	}
	return status(http.StatusInternalServerError)
}
