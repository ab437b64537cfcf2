package router

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	NotFound Kind = iota
	Index
	Collection
	Item
)

func (k Kind) String() string {
	switch k {
	case Index:
		return "index"
	case Collection:
		return "collection"
	case Item:
		return "item"
	}
	return "not-found"
}

var ErrInvalidID = errors.New("invalid user id")

// Route is the intent classified from a request path.
type Route struct {
	Kind Kind

	// Segment is the raw identifier segment of an Item route, empty when the
	// path is exactly /user/
	Segment string
	ID      int
	Err     error
}

// HasID reports whether the route addresses a concrete, well formed id.
func (r Route) HasID() bool {
	return r.Kind == Item && r.Segment != "" && r.Err == nil
}

type entry struct {
	pattern string
	parts   []string
	build   func(captured string) Route
}

const placeholder = "{id}"

var table = compile(
	entry{pattern: "/", build: index},
	entry{pattern: "/index.htm", build: index},
	entry{pattern: "/index.html", build: index},
	entry{pattern: "/users", build: collection},
	entry{pattern: "/users/", build: collection},
	entry{pattern: "/user/", build: item},
	entry{pattern: "/user/" + placeholder, build: item},
	entry{pattern: "/user/" + placeholder + "/", build: item},
)

func compile(entries ...entry) []entry {
	for i := range entries {
		entries[i].parts = strings.Split(entries[i].pattern, "/")
	}
	return entries
}

// Match classifies path. It never fails: paths that match no pattern yield
// a NotFound route.
func Match(path string) Route {

	parts := strings.Split(path, "/")

	for _, e := range table {
		captured, ok := matchParts(e.parts, parts)
		if ok {
			return e.build(captured)
		}
	}

	return Route{Kind: NotFound}
}

func matchParts(pattern, parts []string) (captured string, ok bool) {

	if len(pattern) != len(parts) {
		return "", false
	}

	for i, p := range pattern {
		if p == placeholder {
			if parts[i] == "" {
				return "", false
			}
			captured = parts[i]
			continue
		}
		if p != parts[i] {
			return "", false
		}
	}

	return captured, true
}

func index(string) Route {
	return Route{Kind: Index}
}

func collection(string) Route {
	return Route{Kind: Collection}
}

func item(captured string) Route {
	r := Route{Kind: Item, Segment: captured}
	if captured != "" {
		r.ID, r.Err = ParseID(captured)
	}
	return r
}

// ParseID accepts decimal digits only, no sign, within int range.
func ParseID(s string) (int, error) {

	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidID)
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: '%s' is not a number", ErrInvalidID, s)
		}
	}

	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}

	return id, nil
}
