// Package api is the request contract shared by the HTTP server and the
// typed client: one static table of endpoints with their verbs, path
// templates and payload shapes, so the two sides cannot drift apart.
package api

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

// Endpoint declares a single operation.
type Endpoint struct {
	Name   string
	Method string
	// Path is a template with {placeholder} segments.
	Path string
	// Input is the request body shape, nil for body-less operations.
	Input reflect.Type
	// Responses maps every possible status code to its body shape.
	Responses map[int]reflect.Type
}

var (
	PostsList = Endpoint{
		Name:   "posts.list",
		Method: http.MethodGet,
		Path:   "/api/posts",
		Responses: map[int]reflect.Type{
			http.StatusOK: reflect.TypeOf([]Post(nil)),
		},
	}

	PostsGet = Endpoint{
		Name:   "posts.get",
		Method: http.MethodGet,
		Path:   "/api/posts/{id}",
		Responses: map[int]reflect.Type{
			http.StatusOK:       reflect.TypeOf(Post{}),
			http.StatusNotFound: reflect.TypeOf(ErrorResponse{}),
		},
	}

	PostsCreate = Endpoint{
		Name:   "posts.create",
		Method: http.MethodPost,
		Path:   "/api/posts",
		Input:  reflect.TypeOf(PostInput{}),
		Responses: map[int]reflect.Type{
			http.StatusCreated:    reflect.TypeOf(Post{}),
			http.StatusBadRequest: reflect.TypeOf(ErrorResponse{}),
		},
	}
)

// Endpoints enumerates every operation of the API.
var Endpoints = []Endpoint{PostsList, PostsGet, PostsCreate}

// BuildPath resolves the path template with the given parameters by literal
// placeholder substitution. Every placeholder must be supplied.
func (e Endpoint) BuildPath(params map[string]string) (string, error) {
	path := e.Path
	for key, value := range params {
		path = strings.ReplaceAll(path, "{"+key+"}", value)
	}
	if start := strings.IndexByte(path, '{'); start >= 0 {
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			end = len(path) - start - 1
		}
		return "", fmt.Errorf("%s: missing value for path parameter %q", e.Name, path[start+1:start+end])
	}
	return path, nil
}
