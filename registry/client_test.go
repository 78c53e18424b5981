package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edgekit/iothub/transport"
)

func TestNew_Validation(t *testing.T) {
	tc, _ := transport.New(transport.Config{BaseURL: "http://localhost"})

	if _, err := New(nil, "2018-06-30"); err == nil {
		t.Error("expected error for nil transport")
	}
	for _, v := range []string{"", "  ", "\n"} {
		if _, err := New(tc, v); !IsArgumentEmpty(err) {
			t.Errorf("api version %q: expected argument-empty error, got %v", v, err)
		}
	}

	c, err := New(tc, "2018-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.APIVersion() != "2018-06-30" {
		t.Errorf("unexpected api version: %q", c.APIVersion())
	}
}

func TestCall_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	tc, _ := transport.New(transport.Config{BaseURL: srv.URL})
	c, _ := New(tc, "2018-06-30")

	_, err := Call[Module](context.Background(), c, http.MethodGet, "/devices/d1/modules/m1", nil, false)
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCall_TransportErrorPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(503)
	}))
	defer srv.Close()

	tc, _ := transport.New(transport.Config{BaseURL: srv.URL})
	c, _ := New(tc, "2018-06-30")

	_, err := Call[Module](context.Background(), c, http.MethodGet, "/devices/d1/modules/m1", nil, false)
	var te *transport.Error
	if !errors.As(err, &te) {
		t.Fatalf("transport errors must pass through unchanged, got %T", err)
	}
	if te.StatusCode != 503 {
		t.Errorf("expected status 503, got %d", te.StatusCode)
	}
}

func TestRemoteMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"hub payload", transport.ClassifyStatusCode(404, []byte(`{"Message":"ModuleNotFound;d1/m1"}`)), "ModuleNotFound;d1/m1"},
		{"no body", transport.ClassifyStatusCode(500, nil), ""},
		{"non-json body", transport.ClassifyStatusCode(502, []byte("bad gateway")), ""},
		{"other shape", transport.ClassifyStatusCode(400, []byte(`{"error":"x"}`)), ""},
		{"not a transport error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoteMessage(tt.err); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
