package ocean_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewater-io/ocean/pkg/ocean"
)

func TestDroplet_PublicIPv4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		droplet  ocean.Droplet
		expected string
	}{
		{
			name: "public address present",
			droplet: ocean.Droplet{
				Networks: &ocean.Networks{
					V4: []ocean.Network{
						{IPAddress: "10.0.0.2", Type: "private"},
						{IPAddress: "104.236.32.182", Type: "public"},
					},
				},
			},
			expected: "104.236.32.182",
		},
		{
			name: "private only",
			droplet: ocean.Droplet{
				Networks: &ocean.Networks{
					V4: []ocean.Network{{IPAddress: "10.0.0.2", Type: "private"}},
				},
			},
			expected: "",
		},
		{
			name:     "no networks",
			droplet:  ocean.Droplet{},
			expected: "",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.droplet.PublicIPv4())
		})
	}
}

func TestDomainRecordRequest_OmitsEmptyFields(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&ocean.DomainRecordRequest{Name: "blog"})
	require.NoError(t, err)

	// Partial updates must not send zero values for untouched fields.
	assert.JSONEq(t, `{"name": "blog"}`, string(data))
}

func TestDropletCreateRequest_WireNames(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&ocean.DropletCreateRequest{
		Name:     "web-1",
		Region:   "nyc3",
		Size:     "s-1vcpu-1gb",
		Image:    "ubuntu-24-04-x64",
		SSHKeys:  []string{"512189"},
		UserData: "#cloud-config",
	})
	require.NoError(t, err)

	var decoded map[string]interface{}

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "web-1", decoded["name"])
	assert.Contains(t, decoded, "ssh_keys")
	assert.Contains(t, decoded, "user_data")
	assert.NotContains(t, decoded, "backups")
}
