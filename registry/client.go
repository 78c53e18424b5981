package registry

import (
	"context"
	"encoding/json"
	"fmt"

	stderrors "errors"

	"github.com/edgekit/iothub/errors"
	"github.com/edgekit/iothub/transport"
	"github.com/edgekit/iothub/validation"
)

const (
	// QueryAPIVersion is the query parameter naming the registry API
	// version. It is attached to every request.
	QueryAPIVersion = "api-version"

	// HeaderIfMatch is the optimistic-concurrency header. The client
	// only ever sends the wildcard value: mutations must hit an
	// existing resource, whatever its current ETag.
	HeaderIfMatch = "If-Match"

	ifMatchAny = "*"
)

// Transport executes HTTP requests. *transport.Client implements it.
type Transport interface {
	Do(ctx context.Context, req transport.Request) (*transport.Response, error)
}

// Client issues registry requests over a transport, stamping each one
// with the configured API version.
type Client struct {
	transport  Transport
	apiVersion string
}

// New creates a registry client. The API version must be non-empty and
// not whitespace-only.
func New(t Transport, apiVersion string) (*Client, error) {
	if t == nil {
		return nil, errors.InvalidInput("transport", "must not be nil")
	}
	if err := validation.NonEmpty("apiVersion", apiVersion); err != nil {
		return nil, err
	}
	return &Client{transport: t, apiVersion: apiVersion}, nil
}

// APIVersion returns the configured registry API version.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// exchange sends one registry request. ifMatch attaches the wildcard
// If-Match header. The response is returned undecoded; transport errors
// pass through untouched.
func (c *Client) exchange(ctx context.Context, method, path string, body any, ifMatch bool) (*transport.Response, error) {
	req := transport.Request{
		Method: method,
		Path:   path,
		Query:  map[string]string{QueryAPIVersion: c.apiVersion},
		Body:   body,
	}
	if ifMatch {
		req.Headers = map[string]string{HeaderIfMatch: ifMatchAny}
	}
	return c.transport.Do(ctx, req)
}

// Call sends a registry request and decodes the JSON response into T.
// A 2xx response with an empty body yields (nil, nil); callers decide
// whether a missing body is acceptable for their operation.
func Call[T any](ctx context.Context, c *Client, method, path string, body any, ifMatch bool) (*T, error) {
	resp, err := c.exchange(ctx, method, path, body, ifMatch)
	if err != nil {
		return nil, err
	}
	if len(resp.Body) == 0 {
		return nil, nil
	}

	var result T
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, errors.InvalidInput("response", fmt.Sprintf("decode body: %v", err)).WithCause(err)
	}
	return &result, nil
}

// RemoteMessage extracts the service-supplied message from a transport
// error, when the remote payload is the usual {"Message": "..."} shape.
// Returns "" when there is none.
func RemoteMessage(err error) string {
	var te *transport.Error
	if !stderrors.As(err, &te) || len(te.Body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"Message"`
	}
	if json.Unmarshal(te.Body, &payload) != nil {
		return ""
	}
	return payload.Message
}
