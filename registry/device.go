package registry

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edgekit/iothub/errors"
	"github.com/edgekit/iothub/validation"
)

// DeviceClient manages the module identities of one device.
type DeviceClient struct {
	client   *Client
	deviceID string
}

// NewDeviceClient creates a client scoped to the given device. The
// device id must be non-empty and not whitespace-only.
func NewDeviceClient(c *Client, deviceID string) (*DeviceClient, error) {
	if c == nil {
		return nil, errors.InvalidInput("client", "must not be nil")
	}
	if err := validation.NonEmpty("deviceId", deviceID); err != nil {
		return nil, err
	}
	return &DeviceClient{client: c, deviceID: deviceID}, nil
}

// DeviceID returns the device this client is scoped to.
func (d *DeviceClient) DeviceID() string {
	return d.deviceID
}

// CreateModule registers a new module identity. auth may be nil for a
// module without credentials; managedBy names the managing entity and
// may be empty. Returns the identity as the service stored it,
// including the assigned generation id.
func (d *DeviceClient) CreateModule(ctx context.Context, moduleID string, auth *AuthMechanism, managedBy string) (*Module, error) {
	return d.upsertModule(ctx, moduleID, auth, managedBy, false)
}

// UpdateModule replaces an existing module identity. The request is
// conditional on the module existing: a missing module fails with a
// precondition error rather than creating it.
func (d *DeviceClient) UpdateModule(ctx context.Context, moduleID string, auth *AuthMechanism, managedBy string) (*Module, error) {
	return d.upsertModule(ctx, moduleID, auth, managedBy, true)
}

// GetModule fetches one module identity.
func (d *DeviceClient) GetModule(ctx context.Context, moduleID string) (*Module, error) {
	if err := validation.NonEmpty("moduleId", moduleID); err != nil {
		return nil, err
	}

	mod, err := Call[Module](ctx, d.client, http.MethodGet, d.modulePath(moduleID), nil, false)
	if err != nil {
		return nil, err
	}
	if mod == nil {
		return nil, errors.EmptyResponse()
	}
	return mod, nil
}

// ListModules returns every module identity registered on the device.
// An empty list is a valid result; success without any body is not.
func (d *DeviceClient) ListModules(ctx context.Context) ([]Module, error) {
	modules, err := Call[[]Module](ctx, d.client, http.MethodGet, d.modulesPath(), nil, false)
	if err != nil {
		return nil, err
	}
	if modules == nil {
		return nil, errors.EmptyResponse()
	}
	return *modules, nil
}

// DeleteModule removes a module identity. Any response body is
// discarded; a 2xx status alone means success.
func (d *DeviceClient) DeleteModule(ctx context.Context, moduleID string) error {
	if err := validation.NonEmpty("moduleId", moduleID); err != nil {
		return err
	}

	_, err := d.client.exchange(ctx, http.MethodDelete, d.modulePath(moduleID), nil, true)
	return err
}

// upsertModule PUTs a module identity. Updates send If-Match so the
// write only lands on an existing module; creates send no precondition.
func (d *DeviceClient) upsertModule(ctx context.Context, moduleID string, auth *AuthMechanism, managedBy string, isUpdate bool) (*Module, error) {
	if err := validation.NonEmpty("moduleId", moduleID); err != nil {
		return nil, err
	}

	body := Module{
		ModuleID:       moduleID,
		DeviceID:       d.deviceID,
		ManagedBy:      managedBy,
		Authentication: auth,
	}

	mod, err := Call[Module](ctx, d.client, http.MethodPut, d.modulePath(moduleID), body, isUpdate)
	if err != nil {
		return nil, err
	}
	if mod == nil {
		return nil, errors.EmptyResponse()
	}
	return mod, nil
}

func (d *DeviceClient) modulesPath() string {
	return "/devices/" + url.PathEscape(d.deviceID) + "/modules"
}

func (d *DeviceClient) modulePath(moduleID string) string {
	return d.modulesPath() + "/" + url.PathEscape(moduleID)
}
