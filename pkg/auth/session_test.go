package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solartech.app/field-service/pkg/api"
	"solartech.app/field-service/pkg/cache"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/db"
	"solartech.app/field-service/pkg/fieldops"
	"solartech.app/field-service/pkg/models"
	_ "solartech.app/field-service/pkg/testing"
)

func newTestSession(t *testing.T, remoteURL string) (*Session, *fieldops.Engine, cache.Store) {
	t.Helper()
	common.SetTestLoggerNop()

	store := cache.NewSqliteStore(*db.GetInstance(db.UseMemorySqliteDialector()))
	ctx := context.Background()
	for _, key := range []string{cache.KeyInterventions, cache.KeyCompanies, cache.KeyUsers, cache.KeyAuthToken, cache.KeyAuthUser} {
		require.NoError(t, store.Remove(ctx, key))
	}

	engine := fieldops.NewEngine(store, fieldops.DefaultBaseline())
	client := api.NewClient(remoteURL)
	session := NewSession(engine, client, store)
	return session, engine, store
}

func remoteLoginServer(t *testing.T, actor models.Actor, token string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(api.LoginResponse{Token: token, User: actor})
	}))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoginRemoteSuccess(t *testing.T) {
	actor := models.Actor{ID: "srv-1", Username: "gbd", Role: models.RoleMaster, Name: "GBD Amministratore"}
	server := remoteLoginServer(t, actor, "tok-1")
	defer server.Close()

	session, engine, store := newTestSession(t, server.URL)
	ctx := context.Background()

	got, err := session.Login(ctx, "gbd", "password")
	require.NoError(t, err)
	assert.Equal(t, "srv-1", got.ID)
	assert.False(t, session.Offline())
	assert.Equal(t, "tok-1", session.Token())

	current := engine.Actor()
	require.NotNil(t, current)
	assert.Equal(t, models.RoleMaster, current.Role)

	value, found, err := store.Get(ctx, cache.KeyAuthToken)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "tok-1", string(value))

	_, found, err = store.Get(ctx, cache.KeyAuthUser)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLoginUppercaseRoleNormalized(t *testing.T) {
	actor := models.Actor{ID: "srv-1", Username: "gbd", Role: "MASTER"}
	server := remoteLoginServer(t, actor, "tok-1")
	defer server.Close()

	session, engine, _ := newTestSession(t, server.URL)

	_, err := session.Login(context.Background(), "gbd", "password")
	require.NoError(t, err)
	assert.Equal(t, models.RoleMaster, engine.Actor().Role)
}

func TestLoginTechnicianRepairsDrift(t *testing.T) {
	var companyGBD string
	for _, c := range fieldops.DefaultBaseline().Companies {
		if c.Username == "ditta" {
			companyGBD = c.ID
		}
	}
	require.NotEmpty(t, companyGBD)

	// same username+company as the seeded technician, different server id
	actor := models.Actor{
		ID:        "server-alex-id",
		Username:  "alex",
		Role:      models.RoleTechnician,
		Name:      "Alessandro Rossi",
		CompanyID: models.StrPtr(companyGBD),
	}
	server := remoteLoginServer(t, actor, "tok-1")
	defer server.Close()

	session, engine, _ := newTestSession(t, server.URL)

	_, err := session.Login(context.Background(), "alex", "password")
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, u := range engine.AllUsers() {
		ids[u.ID] = true
	}
	assert.True(t, ids["server-alex-id"])
}

func TestLoginOfflineFallbackInDevelopment(t *testing.T) {
	t.Setenv(common.EnvKeyGoEnv, "development")

	// remote unreachable
	session, engine, store := newTestSession(t, "http://127.0.0.1:1")
	ctx := context.Background()

	got, err := session.Login(ctx, "gbd", "password")
	require.NoError(t, err)
	assert.Equal(t, models.RoleMaster, got.Role)
	assert.True(t, session.Offline())
	assert.NotEmpty(t, session.Token())
	require.NotNil(t, engine.Actor())

	// offline sessions never persist a server token
	_, found, err := store.Get(ctx, cache.KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = store.Get(ctx, cache.KeyAuthUser)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLoginOfflineFallbackRejectsBadCredentials(t *testing.T) {
	t.Setenv(common.EnvKeyGoEnv, "development")

	session, engine, _ := newTestSession(t, "http://127.0.0.1:1")

	_, err := session.Login(context.Background(), "gbd", "wrong-password")
	require.Error(t, err)
	assert.Nil(t, engine.Actor())
}

func TestLoginNoFallbackOutsideDevelopment(t *testing.T) {
	t.Setenv(common.EnvKeyGoEnv, "production")

	session, engine, _ := newTestSession(t, "http://127.0.0.1:1")

	_, err := session.Login(context.Background(), "gbd", "password")
	require.Error(t, err)
	assert.Nil(t, engine.Actor())
}

func TestRestoreSession(t *testing.T) {
	session, engine, store := newTestSession(t, "http://127.0.0.1:1")
	ctx := context.Background()

	actor := models.Actor{ID: "u1", Username: "gbd", Role: models.RoleMaster}
	encoded, err := json.Marshal(actor)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, cache.KeyAuthToken, []byte(signedToken(t, time.Now().Add(time.Hour)))))
	require.NoError(t, store.Set(ctx, cache.KeyAuthUser, encoded))

	restored, err := session.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
	require.NotNil(t, engine.Actor())
	assert.Equal(t, "gbd", engine.Actor().Username)
}

func TestRestoreDiscardsExpiredToken(t *testing.T) {
	session, engine, store := newTestSession(t, "http://127.0.0.1:1")
	ctx := context.Background()

	actor := models.Actor{ID: "u1", Username: "gbd", Role: models.RoleMaster}
	encoded, err := json.Marshal(actor)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, cache.KeyAuthToken, []byte(signedToken(t, time.Now().Add(-time.Hour)))))
	require.NoError(t, store.Set(ctx, cache.KeyAuthUser, encoded))

	restored, err := session.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Nil(t, engine.Actor())

	_, found, err := store.Get(ctx, cache.KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRestoreActorWithoutTokenForcesFreshLogin(t *testing.T) {
	session, _, store := newTestSession(t, "http://127.0.0.1:1")
	ctx := context.Background()

	actor := models.Actor{ID: "u1", Username: "gbd", Role: models.RoleMaster}
	encoded, err := json.Marshal(actor)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, cache.KeyAuthUser, encoded))

	restored, err := session.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored)

	_, found, err := store.Get(ctx, cache.KeyAuthUser)
	require.NoError(t, err)
	assert.False(t, found)
}

// Any remote 401 tears the whole session down, no matter which call hit it.
func TestUnauthorizedResponseForcesLogout(t *testing.T) {
	unauthorized := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			json.NewEncoder(w).Encode(api.LoginResponse{
				Token: "tok-1",
				User:  models.Actor{ID: "u1", Username: "gbd", Role: models.RoleMaster},
			})
			return
		}
		unauthorized = true
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	session, engine, store := newTestSession(t, server.URL)
	ctx := context.Background()

	_, err := session.Login(ctx, "gbd", "password")
	require.NoError(t, err)
	require.NotNil(t, engine.Actor())

	result := session.Client.GetInterventions(ctx)
	require.False(t, result.Success)
	require.True(t, unauthorized)

	assert.Nil(t, engine.Actor())
	assert.Empty(t, session.Token())

	_, found, err := store.Get(ctx, cache.KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, found)
	_, found, err = store.Get(ctx, cache.KeyAuthUser)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLogoutIsIdempotent(t *testing.T) {
	session, engine, _ := newTestSession(t, "http://127.0.0.1:1")
	ctx := context.Background()

	session.Logout(ctx)
	session.Logout(ctx)
	assert.Nil(t, engine.Actor())
	assert.Empty(t, session.Token())
}
