package client

import (
	"context"

	"github.com/tidewater-io/ocean/internal/http"
	"github.com/tidewater-io/ocean/pkg/ocean"
)

// keysResource is the pseudo-resource path for account SSH keys.
const keysResource = "account/keys"

// KeysClient implements the ocean.KeysClient interface.
type KeysClient struct {
	httpClient *http.Client
}

// NewKeysClient creates a new KeysClient.
func NewKeysClient(httpClient *http.Client) *KeysClient {
	return &KeysClient{
		httpClient: httpClient,
	}
}

type keysRoot struct {
	SSHKeys []ocean.Key `json:"ssh_keys"`
	Meta    *listMeta   `json:"meta,omitempty"`
	Links   *listLinks  `json:"links,omitempty"`
}

type keyRoot struct {
	SSHKey *ocean.Key `json:"ssh_key"`
}

// List lists all SSH keys on the account.
func (c *KeysClient) List(ctx context.Context) ([]ocean.Key, error) {
	root, err := get[keysRoot](ctx, c.httpClient, http.BuildPath(keysResource), "keys")
	if err != nil {
		return nil, err
	}

	return root.SSHKeys, nil
}

// Create registers a new SSH key.
func (c *KeysClient) Create(ctx context.Context, request *ocean.KeyCreateRequest) (*ocean.Key, error) {
	root, err := post[keyRoot](ctx, c.httpClient, http.BuildPath(keysResource), request, "key")
	if err != nil {
		return nil, err
	}

	return root.SSHKey, nil
}

// Get retrieves a specific SSH key by ID.
func (c *KeysClient) Get(ctx context.Context, id int) (*ocean.Key, error) {
	root, err := get[keyRoot](ctx, c.httpClient, http.BuildPath(keysResource, id), "key")
	if err != nil {
		return nil, err
	}

	return root.SSHKey, nil
}

// GetByFingerprint retrieves a specific SSH key by fingerprint.
func (c *KeysClient) GetByFingerprint(ctx context.Context, fingerprint string) (*ocean.Key, error) {
	root, err := get[keyRoot](ctx, c.httpClient, http.BuildPath(keysResource, fingerprint), "key")
	if err != nil {
		return nil, err
	}

	return root.SSHKey, nil
}

// Update renames an SSH key.
func (c *KeysClient) Update(ctx context.Context, id int, request *ocean.KeyUpdateRequest) (*ocean.Key, error) {
	root, err := put[keyRoot](ctx, c.httpClient, http.BuildPath(keysResource, id), request, "key")
	if err != nil {
		return nil, err
	}

	return root.SSHKey, nil
}

// Delete removes an SSH key from the account.
func (c *KeysClient) Delete(ctx context.Context, id int) error {
	return del(ctx, c.httpClient, http.BuildPath(keysResource, id), "key")
}
