package commands

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tidewater-io/ocean/pkg/ocean"
	"github.com/tidewater-io/ocean/pkg/oceanclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"

	defaultJSONIndent = "  "
)

// Common static errors used throughout the commands package.
var (
	ErrNotAuthenticated  = errors.New("not authenticated (run 'ocean auth login' or set OCEAN_TOKEN)")
	ErrDropletIDRequired = errors.New("droplet ID must be a number")
	ErrKeyIDRequired     = errors.New("key ID must be a number")
	ErrImageIDRequired   = errors.New("image ID must be a number")
	ErrRecordIDRequired  = errors.New("record ID must be a number")
	ErrActionIDRequired  = errors.New("action ID must be a number")
	ErrNameRequired      = errors.New("name is required")
	ErrTokenRequired     = errors.New("token is required")
)

// CreateClient builds an API client from the effective configuration
// (flags, environment, config file).
func CreateClient(ctx context.Context) (ocean.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	return oceanclient.NewWithEndpoint(ctx, viper.GetString("api"), token)
}

// renderOutput writes data as JSON or YAML when requested, falling back to
// the command's table renderer.
func renderOutput(data interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		defer func() {
			_ = encoder.Close()
		}()

		return encoder.Encode(data)
	default:
		return renderTable()
	}
}

// formatBool renders booleans the way tables expect.
func formatBool(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
