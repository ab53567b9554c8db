// Package client implements the ocean.Client interface on top of the
// internal request executor.
package client

import (
	"github.com/tidewater-io/ocean/internal/auth"
	"github.com/tidewater-io/ocean/internal/constants"
	"github.com/tidewater-io/ocean/internal/http"
	"github.com/tidewater-io/ocean/pkg/ocean"
)

// Client implements the ocean.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string

	// Resource clients
	droplets ocean.DropletsClient
	domains  ocean.DomainsClient
	images   ocean.ImagesClient
	keys     ocean.KeysClient
	regions  ocean.RegionsClient
	sizes    ocean.SizesClient
	actions  ocean.ActionsClient
	account  ocean.AccountClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *ocean.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	} else if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new API client. The endpoint must already be normalized;
// oceanclient.New is the public entry point.
func New(config *ocean.Config) (*Client, error) {
	if config == nil {
		return nil, ocean.ErrConfigRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	tokenManager := auth.NewStaticTokenManager(config.AccessToken)
	httpClient := http.NewClient(endpoint, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      endpoint,
	}

	client.initializeResourceClients()

	return client, nil
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.tokenManager.SetToken(token)
}

// Resource client accessors

// Droplets implements ocean.Client.Droplets.
func (c *Client) Droplets() ocean.DropletsClient {
	return c.droplets
}

// Domains implements ocean.Client.Domains.
func (c *Client) Domains() ocean.DomainsClient {
	return c.domains
}

// Images implements ocean.Client.Images.
func (c *Client) Images() ocean.ImagesClient {
	return c.images
}

// Keys implements ocean.Client.Keys.
func (c *Client) Keys() ocean.KeysClient {
	return c.keys
}

// Regions implements ocean.Client.Regions.
func (c *Client) Regions() ocean.RegionsClient {
	return c.regions
}

// Sizes implements ocean.Client.Sizes.
func (c *Client) Sizes() ocean.SizesClient {
	return c.sizes
}

// Actions implements ocean.Client.Actions.
func (c *Client) Actions() ocean.ActionsClient {
	return c.actions
}

// Account implements ocean.Client.Account.
func (c *Client) Account() ocean.AccountClient {
	return c.account
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.droplets = NewDropletsClient(c.httpClient)
	c.domains = NewDomainsClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
	c.keys = NewKeysClient(c.httpClient)
	c.regions = NewRegionsClient(c.httpClient)
	c.sizes = NewSizesClient(c.httpClient)
	c.actions = NewActionsClient(c.httpClient)
	c.account = NewAccountClient(c.httpClient)
}

// loggerAdapter adapts ocean.Logger to http.Logger.
type loggerAdapter struct {
	logger ocean.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
