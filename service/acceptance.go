package service

import (
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Index page", func(a *biff.A) {
		resp := apiRequest("GET", "/").Do()
		Save(resp, "Index page", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertTrue(strings.Contains(resp.BodyString(), "Go Microservice"))
		biff.AssertTrue(strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

		for _, p := range []string{"/index.htm", "/index.html"} {
			resp := apiRequest("GET", p).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertTrue(strings.Contains(resp.BodyString(), "Go Microservice"))
		}
	})

	a.Alternative("Index page - method not allowed", func(a *biff.A) {
		resp := apiRequest("POST", "/").Do()
		Save(resp, "Index page - method not allowed", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusMethodNotAllowed)
		biff.AssertEqual(resp.BodyString(), "")
	})

	a.Alternative("List users - empty", func(a *biff.A) {
		resp := apiRequest("GET", "/users").Do()
		Save(resp, "List users - empty", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyString(), "")
	})

	a.Alternative("List users - method not allowed", func(a *biff.A) {
		resp := apiRequest("DELETE", "/users/").Do()
		biff.AssertEqual(resp.StatusCode, http.StatusMethodNotAllowed)
	})

	a.Alternative("Create user", func(a *biff.A) {
		resp := apiRequest("POST", "/user/").Do()
		Save(resp, "Create user", `
			Allocates a new user and returns its id as plain text.
			Ids of deleted users are reused, lowest first.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyString(), "0")

		a.Alternative("Retrieve user", func(a *biff.A) {
			resp := apiRequest("GET", "/user/0").Do()
			Save(resp, "Retrieve user", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), map[string]any{})
		})

		a.Alternative("Retrieve user - trailing slash", func(a *biff.A) {
			resp := apiRequest("GET", "/user/0/").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
		})

		a.Alternative("Replace user", func(a *biff.A) {
			resp := apiRequest("PUT", "/user/0").
				WithBodyString("ignored").Do()
			Save(resp, "Replace user", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyString(), "")
		})

		a.Alternative("Delete user", func(a *biff.A) {
			resp := apiRequest("DELETE", "/user/0").Do()
			Save(resp, "Delete user", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyString(), "")

			a.Alternative("Retrieve deleted user", func(a *biff.A) {
				resp := apiRequest("GET", "/user/0").Do()
				Save(resp, "Retrieve user - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Delete deleted user", func(a *biff.A) {
				resp := apiRequest("DELETE", "/user/0").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Replace deleted user", func(a *biff.A) {
				resp := apiRequest("PUT", "/user/0").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Create reuses the id", func(a *biff.A) {
				resp := apiRequest("POST", "/user/").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyString(), "0")
			})
		})

		a.Alternative("List users", func(a *biff.A) {
			apiRequest("POST", "/user/").Do().BodyClose()
			apiRequest("POST", "/user/").Do().BodyClose()

			resp := apiRequest("GET", "/users/").Do()
			Save(resp, "List users", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyString(), "0,1,2")

			a.Alternative("List users after delete", func(a *biff.A) {
				apiRequest("DELETE", "/user/1").Do().BodyClose()

				resp := apiRequest("GET", "/users").Do()
				biff.AssertEqual(resp.BodyString(), "0,2")
			})
		})

		a.Alternative("User - method not allowed", func(a *biff.A) {
			resp := apiRequest("PATCH", "/user/0").Do()
			Save(resp, "User - method not allowed", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusMethodNotAllowed)
		})
	})

	a.Alternative("Create user with id", func(a *biff.A) {
		resp := apiRequest("POST", "/user/5").Do()
		Save(resp, "Create user with id", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)

		resp = apiRequest("POST", "/user/abc").Do()
		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("User - invalid id", func(a *biff.A) {
		for _, method := range []string{"GET", "PUT", "DELETE"} {
			for _, p := range []string{"/user/abc", "/user/99999999999999999999", "/user/"} {
				resp := apiRequest(method, p).Do()
				resp.BodyClose()
				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			}
		}
	})

	a.Alternative("User - not found", func(a *biff.A) {
		resp := apiRequest("GET", "/user/7").Do()
		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Route not found", func(a *biff.A) {
		resp := apiRequest("GET", "/nope").Do()
		Save(resp, "Route not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)

		resp = apiRequest("DELETE", "/user/1/2").Do()
		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})
}
