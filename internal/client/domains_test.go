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

func intPtr(i int) *int {
	return &i
}

func TestDomainsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/domains/", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"domains": []ocean.Domain{
				{Name: "example.com", TTL: 1800, ZoneFile: "$ORIGIN example.com.\n"},
			},
			"meta": map[string]int{"total": 1},
		})
	}))
	defer server.Close()

	domains, err := NewTestClient(server.URL).Domains().List(context.Background())
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Equal(t, "example.com", domains[0].Name)
	assert.Equal(t, 1800, domains[0].TTL)
}

func TestDomainsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/domains/", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var req ocean.DomainCreateRequest

		err := json.NewDecoder(request.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "example.com", req.Name)
		assert.Equal(t, "1.2.3.4", req.IPAddress)

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"domain": ocean.Domain{Name: "example.com", TTL: 1800},
		})
	}))
	defer server.Close()

	domain, err := NewTestClient(server.URL).Domains().Create(context.Background(), &ocean.DomainCreateRequest{
		Name:      "example.com",
		IPAddress: "1.2.3.4",
	})
	require.NoError(t, err)
	assert.Equal(t, "example.com", domain.Name)
}

func TestDomainsClient_Get_NormalizesName(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// Uppercase caller input must arrive lower-cased.
		assert.Equal(t, "/v2/domains/example.com", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"domain": ocean.Domain{Name: "example.com", TTL: 1800},
		})
	}))
	defer server.Close()

	domain, err := NewTestClient(server.URL).Domains().Get(context.Background(), "Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "example.com", domain.Name)
}

func TestDomainsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v2/domains/example.com", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := NewTestClient(server.URL).Domains().Delete(context.Background(), "example.com")
	require.NoError(t, err)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDomainsClient_Records(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/domains/example.com/records", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"domain_records": []ocean.DomainRecord{
					{ID: 3352892, Type: "A", Name: "@", Data: "1.2.3.4"},
					{ID: 3352893, Type: "MX", Name: "@", Data: "mail.example.com.", Priority: intPtr(10)},
				},
				"meta": map[string]int{"total": 2},
			})
		}))
		defer server.Close()

		records, err := NewTestClient(server.URL).Domains().Records(context.Background(), "example.com")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "A", records[0].Type)
		require.NotNil(t, records[1].Priority)
		assert.Equal(t, 10, *records[1].Priority)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/domains/example.com/records/3352892", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"domain_record": ocean.DomainRecord{ID: 3352892, Type: "A", Name: "@", Data: "1.2.3.4"},
			})
		}))
		defer server.Close()

		record, err := NewTestClient(server.URL).Domains().GetRecord(context.Background(), "example.com", 3352892)
		require.NoError(t, err)
		assert.Equal(t, 3352892, record.ID)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/domains/example.com/records", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var req ocean.DomainRecordRequest

			err := json.NewDecoder(request.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "CNAME", req.Type)
			assert.Equal(t, "www", req.Name)

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"domain_record": ocean.DomainRecord{ID: 3352896, Type: "CNAME", Name: "www", Data: "@"},
			})
		}))
		defer server.Close()

		record, err := NewTestClient(server.URL).Domains().CreateRecord(context.Background(), "example.com", &ocean.DomainRecordRequest{
			Type: "CNAME",
			Name: "www",
			Data: "@",
		})
		require.NoError(t, err)
		assert.Equal(t, 3352896, record.ID)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/domains/example.com/records/3352896", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"domain_record": ocean.DomainRecord{ID: 3352896, Type: "CNAME", Name: "blog", Data: "@"},
			})
		}))
		defer server.Close()

		record, err := NewTestClient(server.URL).Domains().UpdateRecord(context.Background(), "example.com", 3352896, &ocean.DomainRecordRequest{
			Name: "blog",
		})
		require.NoError(t, err)
		assert.Equal(t, "blog", record.Name)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v2/domains/example.com/records/3352896", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)

			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		err := NewTestClient(server.URL).Domains().DeleteRecord(context.Background(), "example.com", 3352896)
		require.NoError(t, err)
	})
}
