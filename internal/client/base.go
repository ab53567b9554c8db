package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidewater-io/ocean/internal/http"
)

// The helpers below are the single request-building path shared by every
// resource client: one GET/POST/PUT/DELETE per operation, decoded into the
// resource's envelope type. Resource clients differ only in paths, envelope
// types, and request bodies.

// listMeta mirrors the "meta" object on list envelopes. It is decoded but
// never interpreted; the client does not traverse pages.
type listMeta struct {
	Total int `json:"total"`
}

// listLinks mirrors the "links" object on list envelopes.
type listLinks struct {
	Pages struct {
		First string `json:"first,omitempty"`
		Prev  string `json:"prev,omitempty"`
		Next  string `json:"next,omitempty"`
		Last  string `json:"last,omitempty"`
	} `json:"pages"`
}

func get[T any](ctx context.Context, httpClient *http.Client, path, what string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	return decode[T](resp.Body, what)
}

func post[T any](ctx context.Context, httpClient *http.Client, path string, body interface{}, what string) (*T, error) {
	resp, err := httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", what, err)
	}

	return decode[T](resp.Body, what)
}

func put[T any](ctx context.Context, httpClient *http.Client, path string, body interface{}, what string) (*T, error) {
	resp, err := httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", what, err)
	}

	return decode[T](resp.Body, what)
}

func del(ctx context.Context, httpClient *http.Client, path, what string) error {
	_, err := httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", what, err)
	}

	return nil
}

func decode[T any](body []byte, what string) (*T, error) {
	var out T

	err := json.Unmarshal(body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &out, nil
}
