// Package tests holds helpers shared by HTTP-level tests.
package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Logf matches testing.TB.Logf.
type Logf func(format string, args ...any)

type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logf       Logf
}

func NewAPIClient(
	baseURL string,
	httpClient *http.Client,
	logf Logf,
) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if logf == nil {
		logf = func(string, ...any) {}
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logf:       logf,
	}
}

func (a APIClient) Get(
	ctx context.Context,
	endpoint string,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.httpRequest(ctx, http.MethodGet, endpoint, http.NoBody, dest, errDest)
}

func (a APIClient) Post(
	ctx context.Context,
	endpoint string,
	request any,
	dest any,
	errDest any,
) (*http.Response, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.httpRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(b), dest, errDest)
}

func (a APIClient) PostJSON(
	ctx context.Context,
	endpoint string,
	requestJSON string,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.httpRequest(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte(requestJSON)), dest, errDest)
}

func (a APIClient) httpRequest(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	payload io.Reader,
	dest any,
	errDest any,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if httpMethod == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	a.logf("Request:  %s %s", req.Method, req.URL)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if rawResponse, err := httputil.DumpResponse(resp, true); err == nil {
		a.logf("Response: %s", rawResponse)
	}

	if err = parseResponse(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("parseResponse: %w", err)
	}

	return resp, nil
}

func parseResponse(r *http.Response, dest, errDest any) error {
	if r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices && dest != nil {
		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode(success destination): %w", err)
		}
	} else if errDest != nil {
		if err := json.NewDecoder(r.Body).Decode(errDest); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("json.Decode(err destination): %w", err)
		}
	}

	return nil
}
