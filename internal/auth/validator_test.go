package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForwardsCredentials(t *testing.T) {
	var got map[string]string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"valid": true}`))
	}))
	defer upstream.Close()

	valid, err := NewValidator(upstream.URL).Validate(context.Background(), "admin", "secret")

	require.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, map[string]string{"username": "admin", "password": "secret"}, got)
}

func TestValidateRejectedCredentials(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"valid": false}`))
	}))
	defer upstream.Close()

	valid, err := NewValidator(upstream.URL).Validate(context.Background(), "admin", "wrong")

	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidateNonOKStatusMeansInvalid(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer upstream.Close()

	valid, err := NewValidator(upstream.URL).Validate(context.Background(), "admin", "secret")

	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidateUnreachableUpstream(t *testing.T) {
	_, err := NewValidator("http://127.0.0.1:1").Validate(context.Background(), "admin", "secret")
	assert.Error(t, err)
}
