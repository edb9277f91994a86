package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
	_ "solartech.app/field-service/pkg/testing"
)

func TestLoginSuccess(t *testing.T) {
	common.SetTestLoggerNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gbd", body["username"])

		json.NewEncoder(w).Encode(LoginResponse{
			Token: "tok-123",
			User:  models.Actor{ID: "u1", Username: "gbd", Role: models.RoleMaster},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.Login(context.Background(), "gbd", "password")

	require.True(t, result.Success)
	assert.Equal(t, "tok-123", result.Data.Token)
	assert.Equal(t, models.RoleMaster, result.Data.User.Role)
}

func TestErrorBodyIsSurfaced(t *testing.T) {
	common.SetTestLoggerNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "credenziali non valide"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result := client.Login(context.Background(), "gbd", "wrong")

	require.False(t, result.Success)
	assert.Equal(t, "credenziali non valide", result.Error)
}

func TestUnauthorizedFiresForcedLogout(t *testing.T) {
	common.SetTestLoggerNop()

	statuses := []int{http.StatusUnauthorized, http.StatusForbidden}
	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(server.URL)
		fired := 0
		client.SetOnUnauthorized(func() { fired++ })

		// any endpoint trips the hook, not just login
		result := client.GetInterventions(context.Background())
		require.False(t, result.Success)
		assert.Equal(t, 1, fired, "status %d must force a logout", status)
		assert.Equal(t, "Sessione scaduta. Effettua nuovamente il login.", result.Error)

		server.Close()
	}
}

func TestBearerTokenAttached(t *testing.T) {
	common.SetTestLoggerNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-xyz", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Intervention{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok-xyz")

	result := client.GetInterventions(context.Background())
	assert.True(t, result.Success)
}

func TestNetworkErrorIsTaggedFailure(t *testing.T) {
	common.SetTestLoggerNop()

	client := NewClient("http://127.0.0.1:1") // nothing listens here
	result := client.GetInterventions(context.Background())

	require.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestConfirmInterventionDelete(t *testing.T) {
	common.SetTestLoggerNop()

	deleted := ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		deleted = r.URL.Path
		json.NewEncoder(w).Encode(DeleteResponse{Message: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.ConfirmInterventionDelete(context.Background(), "int-1"))
	assert.Equal(t, "/interventions/int-1", deleted)
}

func TestConfirmInterventionDeleteRejected(t *testing.T) {
	common.SetTestLoggerNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "server unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.ConfirmInterventionDelete(context.Background(), "int-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server unavailable")
}
