// Package registry is a typed client for a hub's module registry.
//
// Client wraps a transport with the registry conventions: every request
// carries the api-version query parameter, and mutations that must hit
// an existing resource send If-Match: "*". DeviceClient scopes the
// operations to a single device:
//
//	c, err := registry.New(transportClient, "2018-06-30")
//	if err != nil { ... }
//	dc, err := registry.NewDeviceClient(c, "edge-device-1")
//	if err != nil { ... }
//	mod, err := dc.CreateModule(ctx, "edgeAgent", nil, "iotedge")
//
// Transport-level failures (connection errors, non-2xx statuses) pass
// through unchanged, so callers can use the transport package's
// checkers (transport.IsNotFound, transport.IsPrecondition, ...) on
// anything returned from here.
package registry
