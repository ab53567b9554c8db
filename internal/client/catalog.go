package client

import (
	"context"

	"github.com/tidewater-io/ocean/internal/http"
	"github.com/tidewater-io/ocean/pkg/ocean"
)

// Regions, sizes, the account-wide action log, and the account itself are
// read-only resources; their clients are grouped here.

// RegionsClient implements the ocean.RegionsClient interface.
type RegionsClient struct {
	httpClient *http.Client
}

// NewRegionsClient creates a new RegionsClient.
func NewRegionsClient(httpClient *http.Client) *RegionsClient {
	return &RegionsClient{httpClient: httpClient}
}

type regionsRoot struct {
	Regions []ocean.Region `json:"regions"`
	Meta    *listMeta      `json:"meta,omitempty"`
}

// List lists all regions.
func (c *RegionsClient) List(ctx context.Context) ([]ocean.Region, error) {
	root, err := get[regionsRoot](ctx, c.httpClient, http.BuildPath("regions"), "regions")
	if err != nil {
		return nil, err
	}

	return root.Regions, nil
}

// SizesClient implements the ocean.SizesClient interface.
type SizesClient struct {
	httpClient *http.Client
}

// NewSizesClient creates a new SizesClient.
func NewSizesClient(httpClient *http.Client) *SizesClient {
	return &SizesClient{httpClient: httpClient}
}

type sizesRoot struct {
	Sizes []ocean.Size `json:"sizes"`
	Meta  *listMeta    `json:"meta,omitempty"`
}

// List lists all droplet sizes.
func (c *SizesClient) List(ctx context.Context) ([]ocean.Size, error) {
	root, err := get[sizesRoot](ctx, c.httpClient, http.BuildPath("sizes"), "sizes")
	if err != nil {
		return nil, err
	}

	return root.Sizes, nil
}

// ActionsClient implements the ocean.ActionsClient interface.
type ActionsClient struct {
	httpClient *http.Client
}

// NewActionsClient creates a new ActionsClient.
func NewActionsClient(httpClient *http.Client) *ActionsClient {
	return &ActionsClient{httpClient: httpClient}
}

// List lists actions performed across the account.
func (c *ActionsClient) List(ctx context.Context) ([]ocean.Action, error) {
	root, err := get[actionsRoot](ctx, c.httpClient, http.BuildPath("actions"), "actions")
	if err != nil {
		return nil, err
	}

	return root.Actions, nil
}

// Get retrieves a specific action.
func (c *ActionsClient) Get(ctx context.Context, id int) (*ocean.Action, error) {
	root, err := get[actionRoot](ctx, c.httpClient, http.BuildPath("actions", id), "action")
	if err != nil {
		return nil, err
	}

	return root.Action, nil
}

// AccountClient implements the ocean.AccountClient interface.
type AccountClient struct {
	httpClient *http.Client
}

// NewAccountClient creates a new AccountClient.
func NewAccountClient(httpClient *http.Client) *AccountClient {
	return &AccountClient{httpClient: httpClient}
}

type accountRoot struct {
	Account *ocean.Account `json:"account"`
}

// Get retrieves the authenticated account.
func (c *AccountClient) Get(ctx context.Context) (*ocean.Account, error) {
	root, err := get[accountRoot](ctx, c.httpClient, http.BuildPath("account"), "account")
	if err != nil {
		return nil, err
	}

	return root.Account, nil
}
