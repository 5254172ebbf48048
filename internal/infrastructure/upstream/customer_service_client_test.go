package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer_portal/internal/domain/entities"
	"customer_portal/internal/usecase/interfaces"
	"customer_portal/pkg/logger"
)

const testAuth = "Bearer token-123"

func newTestClient(t *testing.T, handler http.HandlerFunc) (*CustomerServiceClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewCustomerServiceClient(srv.URL, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client, srv
}

func TestNewCustomerServiceClient(t *testing.T) {
	if _, err := NewCustomerServiceClient("  ", logger.Nop()); !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}
}

func TestCustomerServiceClient_GetOwnProfile(t *testing.T) {
	t.Run("forwards authorization and decodes the profile", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != "/customers/me" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != testAuth {
				t.Fatalf("authorization not forwarded: %q", got)
			}
			_ = json.NewEncoder(w).Encode(entities.CustomerProfile{ID: "p-1", UserID: "u-1", Name: "Amal"})
		})

		profile, err := client.GetOwnProfile(context.Background(), testAuth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.UserID != "u-1" || profile.Name != "Amal" {
			t.Fatalf("unexpected profile: %+v", profile)
		}
	})

	t.Run("404 maps to ErrProfileNotFound", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetOwnProfile(context.Background(), testAuth)
		if !errors.Is(err, interfaces.ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("server error maps to UpstreamError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetOwnProfile(context.Background(), testAuth)

		var ue *interfaces.UpstreamError
		if !errors.As(err, &ue) || ue.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected a 500 UpstreamError, got %v", err)
		}
	})
}

func TestCustomerServiceClient_UpsertOwnProfile(t *testing.T) {
	t.Run("sends the draft as JSON", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/customers/me" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			var draft entities.ProfileDraft
			if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
				t.Fatalf("undecodable body: %v", err)
			}
			if draft.Email != "a@x.com" {
				t.Fatalf("unexpected draft: %+v", draft)
			}
			_ = json.NewEncoder(w).Encode(entities.CustomerProfile{UserID: "u-1", Email: draft.Email})
		})

		profile, err := client.UpsertOwnProfile(context.Background(), testAuth, entities.ProfileDraft{Name: "A", Email: "a@x.com", Phone: "071-0000000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.Email != "a@x.com" {
			t.Fatalf("unexpected echoed profile: %+v", profile)
		}
	})

	t.Run("non-success status fails the write", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.UpsertOwnProfile(context.Background(), testAuth, entities.ProfileDraft{Name: "A"})

		var ue *interfaces.UpstreamError
		if !errors.As(err, &ue) || ue.StatusCode != http.StatusForbidden {
			t.Fatalf("expected a 403 UpstreamError, got %v", err)
		}
	})
}

func TestCustomerServiceClient_Lists(t *testing.T) {
	t.Run("decodes vehicle and history arrays", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/vehicles":
				_, _ = w.Write([]byte(`[{"id":"v-1","make":"Toyota","model":"Axio","plateNo":"CAB-1234","year":2019}]`))
			case "/history":
				_, _ = w.Write([]byte(`[{"id":"h-1","title":"Oil Change","status":"DONE","completedAt":"2024-03-01T09:00:00Z","cost":7500}]`))
			default:
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
		})

		vehicles, err := client.ListVehicles(context.Background(), testAuth)
		if err != nil || len(vehicles) != 1 {
			t.Fatalf("unexpected vehicles result: %v %v", vehicles, err)
		}
		if vehicles[0].Year == nil || *vehicles[0].Year != 2019 {
			t.Fatalf("year not decoded: %+v", vehicles[0])
		}

		history, err := client.ListHistory(context.Background(), testAuth)
		if err != nil || len(history) != 1 {
			t.Fatalf("unexpected history result: %v %v", history, err)
		}
		if history[0].Cost == nil || *history[0].Cost != 7500 {
			t.Fatalf("cost not decoded: %+v", history[0])
		}
	})

	t.Run("non-array bodies normalize to empty, not an error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"weird shape"}`))
		})

		vehicles, err := client.ListVehicles(context.Background(), testAuth)
		if err != nil {
			t.Fatalf("malformed list must not fail: %v", err)
		}
		if vehicles == nil || len(vehicles) != 0 {
			t.Fatalf("expected empty slice, got %+v", vehicles)
		}

		history, err := client.ListHistory(context.Background(), testAuth)
		if err != nil {
			t.Fatalf("malformed list must not fail: %v", err)
		}
		if history == nil || len(history) != 0 {
			t.Fatalf("expected empty slice, got %+v", history)
		}
	})

	t.Run("JSON null normalizes to empty", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		})

		vehicles, err := client.ListVehicles(context.Background(), testAuth)
		if err != nil || vehicles == nil || len(vehicles) != 0 {
			t.Fatalf("expected empty slice, got %+v err=%v", vehicles, err)
		}
	})

	t.Run("server error maps to UpstreamError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.ListHistory(context.Background(), testAuth)

		var ue *interfaces.UpstreamError
		if !errors.As(err, &ue) || ue.Operation != "list history" {
			t.Fatalf("expected a list history UpstreamError, got %v", err)
		}
	})

	t.Run("no authorization header when none supplied", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Header["Authorization"]; ok {
				t.Fatalf("unexpected Authorization header")
			}
			_, _ = w.Write([]byte(`[]`))
		})

		if _, err := client.ListVehicles(context.Background(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
