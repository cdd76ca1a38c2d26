package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantRole(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient("bot-token", "guild-1")
	client.BaseURL = server.URL

	err := client.GrantRole(context.Background(), "user-1", "role-1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/guilds/guild-1/members/user-1/roles/role-1", gotPath)
	assert.Equal(t, "Bot bot-token", gotAuth)
}

func TestGrantRoleAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Missing Permissions"}`))
	}))
	defer server.Close()

	client := NewClient("bot-token", "guild-1")
	client.BaseURL = server.URL

	err := client.GrantRole(context.Background(), "user-1", "role-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing Permissions")
	assert.Contains(t, err.Error(), "403")
}
