package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"heat_capacity_game/internal/service"
)

func TestAuthHandlers_SignIn(t *testing.T) {
	auth := &mockAuth{enabled: true, genTokenToken: "tok123"}
	r := newTestRouter(&service.Service{Authorization: auth})

	// sign-in success
	w := doRequest(r, http.MethodPost, "/auth/sign-in", `{"passphrase":"open sesame"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}
	if auth.lastPassphrase != "open sesame" {
		t.Fatalf("GenerateToken got %q", auth.lastPassphrase)
	}

	// sign-in invalid body → 400
	w = doRequest(r, http.MethodPost, "/auth/sign-in", `{"passphrase":1}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestAuthHandlers_SignInFailures(t *testing.T) {
	cases := []struct {
		name string
		auth *mockAuth
		want int
	}{
		{"disabled", &mockAuth{enabled: false}, http.StatusBadRequest},
		{"wrong passphrase", &mockAuth{enabled: true, genTokenErr: service.ErrInvalidPassphrase}, http.StatusUnauthorized},
		{"wrapped wrong passphrase", &mockAuth{enabled: true, genTokenErr: fmt.Errorf("x: %w", service.ErrInvalidPassphrase)}, http.StatusUnauthorized},
		{"signing failure", &mockAuth{enabled: true, genTokenErr: errors.New("no key")}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: tc.auth})
			w := doRequest(r, http.MethodPost, "/auth/sign-in", `{"passphrase":"p"}`, "")
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}
