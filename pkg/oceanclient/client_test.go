package oceanclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewater-io/ocean/pkg/ocean"
	"github.com/tidewater-io/ocean/pkg/oceanclient"
)

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := oceanclient.New(context.Background(), nil)
	require.ErrorIs(t, err, ocean.ErrConfigRequired)
}

func TestNew_SendsBearerToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer secret-token", request.Header.Get("Authorization"))
		assert.Equal(t, "/v2/regions/", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"regions": []ocean.Region{{Slug: "nyc3", Name: "New York 3"}},
		})
	}))
	defer server.Close()

	cli, err := oceanclient.NewWithEndpoint(context.Background(), server.URL, "secret-token")
	require.NoError(t, err)

	regions, err := cli.Regions().List(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "nyc3", regions[0].Slug)
}

func TestNew_NormalizesEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
	}{
		{name: "trailing slash", endpoint: "trailing/"},
		{name: "no scheme", endpoint: "bare-host"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			// Construction must succeed; the endpoint is only dialed on use.
			cli, err := oceanclient.New(context.Background(), &ocean.Config{
				APIEndpoint: testCase.endpoint,
				AccessToken: "token",
			})
			require.NoError(t, err)
			assert.NotNil(t, cli)
		})
	}
}

func TestNewWithToken_MissingTokenSurfacesOnUse(t *testing.T) {
	t.Parallel()

	cli, err := oceanclient.NewWithEndpoint(context.Background(), "http://127.0.0.1:0", "")
	require.NoError(t, err)

	_, err = cli.Regions().List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ocean.ErrTokenRequired)
}
