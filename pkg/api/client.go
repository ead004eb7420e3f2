package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Error is a non-2xx response decoded from its error body.
type Error struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api: %d %s (field %s)", e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client issues requests using the same endpoint table the server registers
// its routes from.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) ListPosts(ctx context.Context, q ListPostsQuery) ([]Post, error) {
	path, err := PostsList.BuildPath(nil)
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out []Post
	if err := c.do(ctx, PostsList.Method, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (Post, error) {
	path, err := PostsGet.BuildPath(map[string]string{"id": strconv.FormatInt(id, 10)})
	if err != nil {
		return Post{}, err
	}

	var out Post
	if err := c.do(ctx, PostsGet.Method, path, nil, http.StatusOK, &out); err != nil {
		return Post{}, err
	}
	return out, nil
}

func (c *Client) CreatePost(ctx context.Context, in PostInput) (Post, error) {
	path, err := PostsCreate.BuildPath(nil)
	if err != nil {
		return Post{}, err
	}

	var out Post
	if err := c.do(ctx, PostsCreate.Method, path, in, http.StatusCreated, &out); err != nil {
		return Post{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var errBody ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message == "" {
			errBody.Message = http.StatusText(resp.StatusCode)
		}
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    errBody.Message,
			Field:      errBody.Field,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
