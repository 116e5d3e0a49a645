package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/devlink/server/internal/apperr"
	"github.com/devlink/server/internal/middleware"
)

// API talks to the server. Requests are single-flight per call site: no
// retries, no cancellation beyond the caller's context; a response that
// arrives after the caller moved on is simply discarded.
type API struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs (or clears) the bearer token sent on every request.
func (a *API) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

func (a *API) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// apiFailure is the normalized shape of any failed request.
type apiFailure struct {
	RequestError
	Fields []apperr.FieldError
}

func (f *apiFailure) Error() string {
	return fmt.Sprintf("%d: %s", f.StatusCode, f.Message)
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := a.Token(); token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return &apiFailure{RequestError: RequestError{Message: err.Error(), StatusCode: 0}}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apiFailure{RequestError: RequestError{Message: err.Error(), StatusCode: resp.StatusCode}}
	}

	if resp.StatusCode >= 400 {
		return normalizeFailure(resp, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &apiFailure{RequestError: RequestError{Message: err.Error(), StatusCode: resp.StatusCode}}
		}
	}
	return nil
}

// normalizeFailure folds the server's error payload shapes ({msg} or
// {errors:[{msg,param}]}) into one apiFailure.
func normalizeFailure(resp *http.Response, data []byte) *apiFailure {
	failure := &apiFailure{
		RequestError: RequestError{
			Message:    resp.Status,
			StatusCode: resp.StatusCode,
		},
	}

	var payload struct {
		Msg    string              `json:"msg"`
		Errors []apperr.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Msg != "" {
			failure.Message = payload.Msg
		}
		failure.Fields = payload.Errors
	}

	return failure
}

func (a *API) Get(ctx context.Context, path string, out any) error {
	return a.do(ctx, http.MethodGet, path, nil, out)
}

func (a *API) Post(ctx context.Context, path string, body, out any) error {
	return a.do(ctx, http.MethodPost, path, body, out)
}

func (a *API) Put(ctx context.Context, path string, body, out any) error {
	return a.do(ctx, http.MethodPut, path, body, out)
}

func (a *API) Delete(ctx context.Context, path string, out any) error {
	return a.do(ctx, http.MethodDelete, path, nil, out)
}
