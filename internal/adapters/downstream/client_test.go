package downstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orggate/internal/modkit/scope"
	perrs "orggate/internal/platform/errors"
)

func TestDoReturnsStatusAndBody(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`User 'x@y.com' is already invited`))
	}))
	defer srv.Close()

	c := New(Options{Service: "accounts", BaseURL: srv.URL, Token: "svc-token"})
	out, err := c.Do(context.Background(), "accounts.save_invite", http.MethodPost, "/api/invite", map[string]string{"a": "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != 400 {
		t.Fatalf("status = %d", out.Status)
	}
	if string(out.Body) != `User 'x@y.com' is already invited` {
		t.Fatalf("body = %q", out.Body)
	}
	if gotMethod != "POST" || gotPath != "/api/invite" {
		t.Fatalf("saw %s %s", gotMethod, gotPath)
	}
	if gotAuth != "Bearer svc-token" {
		t.Fatalf("auth = %q", gotAuth)
	}
}

func TestDoEncodesJSONBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(204)
	}))
	defer srv.Close()

	c := New(Options{Service: "schemes", BaseURL: srv.URL})
	out, err := c.Do(context.Background(), "op", http.MethodPost, "/x", map[string]string{"k": "v"})
	if err != nil || out.Status != 204 {
		t.Fatalf("out=%+v err=%v", out, err)
	}
	if got["k"] != "v" {
		t.Fatalf("downstream saw body %v", got)
	}
}

func TestDoForwardsCallerIdentity(t *testing.T) {
	var gotOnBehalf string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOnBehalf = r.Header.Get("X-On-Behalf-Of")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := New(Options{Service: "accounts", BaseURL: srv.URL})
	ctx := scope.With(context.Background(), map[string]string{"user_id": "u-42"})
	if _, err := c.Do(ctx, "op", http.MethodGet, "/x", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOnBehalf != "u-42" {
		t.Fatalf("X-On-Behalf-Of = %q", gotOnBehalf)
	}
}

func TestDoTransportFailureIsDistinct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(Options{Service: "accounts", BaseURL: srv.URL})
	_, err := c.Do(context.Background(), "op", http.MethodGet, "/x", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !perrs.IsCode(err, perrs.ErrorCodeUnavailable) {
		t.Fatalf("code = %v", perrs.CodeOf(err))
	}
}

func TestEnsure2xx(t *testing.T) {
	if err := Ensure2xx("accounts", Outcome{Status: 204}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Ensure2xx("accounts", Outcome{Status: 404, Body: []byte("nope")})
	se, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if se.Status != 404 || string(se.Body) != "nope" || se.Service != "accounts" {
		t.Fatalf("got %+v", se)
	}
}

func TestDecodeJSON(t *testing.T) {
	type resp struct {
		ID string `json:"id"`
	}
	v, err := DecodeJSON[resp]("persons", Outcome{Status: 200, Body: []byte(`{"id":"p1"}`)})
	if err != nil || v.ID != "p1" {
		t.Fatalf("v=%+v err=%v", v, err)
	}
	if _, err := DecodeJSON[resp]("persons", Outcome{Status: 200, Body: []byte(`{`)}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(404)
			return
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := New(Options{Service: "organisations", BaseURL: srv.URL})
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
