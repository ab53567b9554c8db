package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewater-io/ocean/pkg/ocean"
)

const testFingerprint = "3b:16:bf:e4:8b:00:8b:b8:59:8c:a9:d3:f0:19:45:fa"

func TestKeysClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/account/keys/", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"ssh_keys": []ocean.Key{
				{ID: 512189, Name: "laptop", Fingerprint: testFingerprint},
			},
			"meta": map[string]int{"total": 1},
		})
	}))
	defer server.Close()

	keys, err := NewTestClient(server.URL).Keys().List(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "laptop", keys[0].Name)
}

func TestKeysClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/account/keys/", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var req ocean.KeyCreateRequest

		err := json.NewDecoder(request.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "laptop", req.Name)
		assert.Contains(t, req.PublicKey, "ssh-ed25519")

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"ssh_key": ocean.Key{ID: 512189, Name: "laptop", Fingerprint: testFingerprint},
		})
	}))
	defer server.Close()

	key, err := NewTestClient(server.URL).Keys().Create(context.Background(), &ocean.KeyCreateRequest{
		Name:      "laptop",
		PublicKey: "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIGr user@laptop",
	})
	require.NoError(t, err)
	assert.Equal(t, 512189, key.ID)
}

func TestKeysClient_GetByFingerprint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// Fingerprints must survive the path builder intact.
		assert.Equal(t, "/v2/account/keys/"+testFingerprint, request.URL.Path)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"ssh_key": ocean.Key{ID: 512189, Name: "laptop", Fingerprint: testFingerprint},
		})
	}))
	defer server.Close()

	key, err := NewTestClient(server.URL).Keys().GetByFingerprint(context.Background(), testFingerprint)
	require.NoError(t, err)
	assert.Equal(t, testFingerprint, key.Fingerprint)
}

func TestKeysClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/account/keys/512189", request.URL.Path)
		assert.Equal(t, "PUT", request.Method)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"ssh_key": ocean.Key{ID: 512189, Name: "desktop", Fingerprint: testFingerprint},
		})
	}))
	defer server.Close()

	key, err := NewTestClient(server.URL).Keys().Update(context.Background(), 512189, &ocean.KeyUpdateRequest{Name: "desktop"})
	require.NoError(t, err)
	assert.Equal(t, "desktop", key.Name)
}

func TestKeysClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/account/keys/512189", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := NewTestClient(server.URL).Keys().Delete(context.Background(), 512189)
	require.NoError(t, err)
}
