package constants

import "time"

// API endpoint.
const (
	// DefaultAPIEndpoint is the production API base URL.
	DefaultAPIEndpoint = "https://api.digitalocean.com"

	// APIVersionPrefix is prepended to every resource path.
	APIVersionPrefix = "/v2"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
