// Package transport provides the generic HTTP client the registry layer
// is built on: URL construction from a base address, JSON body encoding,
// default and per-request headers, authentication, TLS (including client
// certificates), and structured error classification.
//
// Fault handling is opt-in: retry and circuit breaking apply only when
// configured, and the layers above transport never retry on their own.
//
// # Basic Usage
//
//	client, err := transport.New(transport.Config{
//	    BaseURL: "https://myhub.azure-devices.net",
//	    Timeout: 30 * time.Second,
//	    Auth:    transport.SharedAccessAuth(token),
//	})
//
//	resp, err := client.Do(ctx, transport.Request{
//	    Method: http.MethodGet,
//	    Path:   "/devices/d1/modules",
//	})
package transport
