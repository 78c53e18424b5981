package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edgekit/iothub/transport"
)

const testAPIVersion = "2018-04-10"

// newDeviceClient wires a DeviceClient for d1 to a test server and
// returns a counter of requests that reached the server.
func newDeviceClient(t *testing.T, handler http.HandlerFunc) (*DeviceClient, *int) {
	t.Helper()

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	tc, err := transport.New(transport.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("transport.New: %v", err)
	}
	c, err := New(tc, testAPIVersion)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	dc, err := NewDeviceClient(c, "d1")
	if err != nil {
		t.Fatalf("NewDeviceClient: %v", err)
	}
	return dc, &hits
}

// echoModule responds the way the registry does on upsert: the request
// body plus the service-assigned fields.
func echoModule(t *testing.T, w http.ResponseWriter, r *http.Request) {
	t.Helper()
	var mod Module
	if err := json.NewDecoder(r.Body).Decode(&mod); err != nil {
		t.Errorf("decode request body: %v", err)
	}
	mod.GenerationID = "g1"
	mod.ManagedBy = "iotedge"
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mod)
}

func TestCreateModule(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/devices/d1/modules/m1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get(QueryAPIVersion); got != testAPIVersion {
			t.Errorf("expected api-version %s, got %q", testAPIVersion, got)
		}
		if got := r.Header.Get(HeaderIfMatch); got != "" {
			t.Errorf("create must not send If-Match, got %q", got)
		}

		var mod Module
		json.NewDecoder(r.Body).Decode(&mod)
		if mod.ModuleID != "m1" || mod.DeviceID != "d1" {
			t.Errorf("unexpected identity in body: %+v", mod)
		}
		auth := mod.Authentication
		if auth == nil || auth.Type != AuthTypeSas || auth.SymmetricKey == nil {
			t.Fatalf("unexpected authentication: %+v", auth)
		}
		if auth.SymmetricKey.PrimaryKey != "pkey" || auth.SymmetricKey.SecondaryKey != "skey" {
			t.Errorf("unexpected keys: %+v", auth.SymmetricKey)
		}

		mod.GenerationID = "g1"
		mod.ManagedBy = "iotedge"
		json.NewEncoder(w).Encode(mod)
	})

	auth := AuthMechanism{}.
		WithType(AuthTypeSas).
		WithSymmetricKey(SymmetricKey{}.WithPrimaryKey("pkey").WithSecondaryKey("skey"))

	mod, err := dc.CreateModule(context.Background(), "m1", &auth, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mod.ModuleID != "m1" || mod.DeviceID != "d1" {
		t.Errorf("unexpected module: %+v", mod)
	}
	if mod.GenerationID != "g1" {
		t.Errorf("expected generation id g1, got %q", mod.GenerationID)
	}
	if mod.ManagedBy != "iotedge" {
		t.Errorf("expected managedBy iotedge, got %q", mod.ManagedBy)
	}
}

func TestUpdateModule_SendsIfMatch(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(HeaderIfMatch); got != "*" {
			t.Errorf("update must send If-Match *, got %q", got)
		}
		echoModule(t, w, r)
	})

	mod, err := dc.UpdateModule(context.Background(), "m1", nil, "iotedge")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mod.GenerationID != "g1" {
		t.Errorf("expected generation id g1, got %q", mod.GenerationID)
	}
}

func TestUpsert_EmptyModuleID(t *testing.T) {
	dc, hits := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {})

	for _, id := range []string{"", "   ", "\t"} {
		if _, err := dc.CreateModule(context.Background(), id, nil, ""); !IsArgumentEmpty(err) {
			t.Errorf("create %q: expected argument-empty error, got %v", id, err)
		}
		if _, err := dc.UpdateModule(context.Background(), id, nil, ""); !IsArgumentEmpty(err) {
			t.Errorf("update %q: expected argument-empty error, got %v", id, err)
		}
	}
	if *hits != 0 {
		t.Errorf("no request should reach the server, got %d", *hits)
	}
}

func TestCreateModule_EmptyResponse(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	})

	_, err := dc.CreateModule(context.Background(), "m1", nil, "")
	if !IsEmptyResponse(err) {
		t.Errorf("expected empty-response error, got %v", err)
	}
}

func TestGetModule(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/devices/d1/modules/m1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Module{ModuleID: "m1", DeviceID: "d1", GenerationID: "g1"})
	})

	mod, err := dc.GetModule(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mod.ModuleID != "m1" || mod.GenerationID != "g1" {
		t.Errorf("unexpected module: %+v", mod)
	}
}

func TestGetModule_NotFound(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		json.NewEncoder(w).Encode(map[string]string{"Message": "ModuleNotFound"})
	})

	_, err := dc.GetModule(context.Background(), "m9")
	if !transport.IsNotFound(err) {
		t.Errorf("expected transport not-found error, got %v", err)
	}
	if msg := RemoteMessage(err); msg != "ModuleNotFound" {
		t.Errorf("expected remote message, got %q", msg)
	}
}

func TestGetModule_EmptyID(t *testing.T) {
	dc, hits := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {})
	if _, err := dc.GetModule(context.Background(), " "); !IsArgumentEmpty(err) {
		t.Errorf("expected argument-empty error, got %v", err)
	}
	if *hits != 0 {
		t.Errorf("no request should reach the server, got %d", *hits)
	}
}

func TestListModules(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/devices/d1/modules" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get(QueryAPIVersion); got != testAPIVersion {
			t.Errorf("expected api-version %s, got %q", testAPIVersion, got)
		}
		json.NewEncoder(w).Encode([]Module{
			{ModuleID: "m1", DeviceID: "d1"},
			{ModuleID: "m2", DeviceID: "d1"},
		})
	})

	modules, err := dc.ListModules(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[0].ModuleID != "m1" || modules[1].ModuleID != "m2" {
		t.Errorf("unexpected modules: %+v", modules)
	}
}

func TestListModules_EmptyList(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	modules, err := dc.ListModules(context.Background())
	if err != nil {
		t.Fatalf("an empty list is a valid result: %v", err)
	}
	if len(modules) != 0 {
		t.Errorf("expected empty list, got %+v", modules)
	}
}

func TestListModules_MissingBody(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	})

	_, err := dc.ListModules(context.Background())
	if !IsEmptyResponse(err) {
		t.Errorf("expected empty-response error, got %v", err)
	}
}

func TestDeleteModule(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/devices/d1/modules/m1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get(HeaderIfMatch); got != "*" {
			t.Errorf("delete must send If-Match *, got %q", got)
		}
		w.WriteHeader(204)
	})

	if err := dc.DeleteModule(context.Background(), "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteModule_IgnoresBody(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("not json at all"))
	})

	if err := dc.DeleteModule(context.Background(), "m1"); err != nil {
		t.Fatalf("a 2xx delete succeeds regardless of body: %v", err)
	}
}

func TestDeleteModule_EmptyID(t *testing.T) {
	dc, hits := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {})
	if err := dc.DeleteModule(context.Background(), ""); !IsArgumentEmpty(err) {
		t.Errorf("expected argument-empty error, got %v", err)
	}
	if *hits != 0 {
		t.Errorf("no request should reach the server, got %d", *hits)
	}
}

func TestDeleteModule_ServerError(t *testing.T) {
	dc, _ := newDeviceClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(412)
	})

	err := dc.DeleteModule(context.Background(), "m1")
	if !transport.IsPrecondition(err) {
		t.Errorf("expected precondition error, got %v", err)
	}
}

func TestPathEscaping(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(Module{ModuleID: "m 1"})
	}))
	defer srv.Close()

	tc, _ := transport.New(transport.Config{BaseURL: srv.URL})
	c, _ := New(tc, testAPIVersion)
	dc, err := NewDeviceClient(c, "dev/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := dc.GetModule(context.Background(), "m 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/devices/dev%2F1/modules/m%201" {
		t.Errorf("identifiers must be path-escaped, got %s", gotPath)
	}
}

func TestNewDeviceClient_Invalid(t *testing.T) {
	tc, _ := transport.New(transport.Config{BaseURL: "http://localhost"})
	c, _ := New(tc, testAPIVersion)

	if _, err := NewDeviceClient(c, "  "); !IsArgumentEmpty(err) {
		t.Errorf("expected argument-empty error, got %v", err)
	}
	if _, err := NewDeviceClient(nil, "d1"); err == nil {
		t.Error("expected error for nil client")
	}
}

func TestDeviceID(t *testing.T) {
	tc, _ := transport.New(transport.Config{BaseURL: "http://localhost"})
	c, _ := New(tc, testAPIVersion)
	dc, _ := NewDeviceClient(c, "d1")
	if dc.DeviceID() != "d1" {
		t.Errorf("unexpected device id: %q", dc.DeviceID())
	}
}
