package ocean

import (
	"context"
	"net/http"
	"time"
)

// ComputeClients provides access to compute resource clients.
type ComputeClients interface {
	Droplets() DropletsClient
	Images() ImagesClient
	Regions() RegionsClient
	Sizes() SizesClient
}

// NetworkClients provides access to DNS resource clients.
type NetworkClients interface {
	Domains() DomainsClient
}

// AccountClients provides access to account-scoped resource clients.
type AccountClients interface {
	Keys() KeysClient
	Actions() ActionsClient
	Account() AccountClient
}

// Client is the full API surface, grouped by resource family.
type Client interface {
	ComputeClients
	NetworkClients
	AccountClients
}

// DropletsClient manages droplets, their sub-resources, and action triggers.
//
// Every trigger issues a single POST to /v2/droplets/<id>/actions with a
// {"type": ...} body and returns the resulting in-progress Action.
type DropletsClient interface {
	List(ctx context.Context) ([]Droplet, error)
	Get(ctx context.Context, id int) (*Droplet, error)
	Create(ctx context.Context, request *DropletCreateRequest) (*Droplet, error)
	Delete(ctx context.Context, id int) error

	// Sub-resources
	Kernels(ctx context.Context, id int) ([]Kernel, error)
	Snapshots(ctx context.Context, id int) ([]Image, error)
	Backups(ctx context.Context, id int) ([]Image, error)
	Actions(ctx context.Context, id int) ([]Action, error)
	GetAction(ctx context.Context, id, actionID int) (*Action, error)

	// Action triggers
	Reboot(ctx context.Context, id int) (*Action, error)
	PowerCycle(ctx context.Context, id int) (*Action, error)
	Shutdown(ctx context.Context, id int) (*Action, error)
	PowerOff(ctx context.Context, id int) (*Action, error)
	PowerOn(ctx context.Context, id int) (*Action, error)
	PasswordReset(ctx context.Context, id int) (*Action, error)
	Resize(ctx context.Context, id int, size string) (*Action, error)
	Snapshot(ctx context.Context, id int, name string) (*Action, error)
	Rename(ctx context.Context, id int, name string) (*Action, error)
	Restore(ctx context.Context, id, imageID int) (*Action, error)
	Rebuild(ctx context.Context, id int, image string) (*Action, error)
}

// DomainsClient manages DNS domains and their nested records.
type DomainsClient interface {
	List(ctx context.Context) ([]Domain, error)
	Create(ctx context.Context, request *DomainCreateRequest) (*Domain, error)
	Get(ctx context.Context, name string) (*Domain, error)
	Delete(ctx context.Context, name string) error

	Records(ctx context.Context, domain string) ([]DomainRecord, error)
	GetRecord(ctx context.Context, domain string, id int) (*DomainRecord, error)
	CreateRecord(ctx context.Context, domain string, request *DomainRecordRequest) (*DomainRecord, error)
	UpdateRecord(ctx context.Context, domain string, id int, request *DomainRecordRequest) (*DomainRecord, error)
	DeleteRecord(ctx context.Context, domain string, id int) error
}

// ImagesClient manages images.
type ImagesClient interface {
	List(ctx context.Context) ([]Image, error)
	Get(ctx context.Context, id int) (*Image, error)
	GetBySlug(ctx context.Context, slug string) (*Image, error)
	Update(ctx context.Context, id int, request *ImageUpdateRequest) (*Image, error)
	Delete(ctx context.Context, id int) error
	Transfer(ctx context.Context, id int, region string) (*Action, error)
}

// KeysClient manages account SSH keys.
type KeysClient interface {
	List(ctx context.Context) ([]Key, error)
	Create(ctx context.Context, request *KeyCreateRequest) (*Key, error)
	Get(ctx context.Context, id int) (*Key, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (*Key, error)
	Update(ctx context.Context, id int, request *KeyUpdateRequest) (*Key, error)
	Delete(ctx context.Context, id int) error
}

// RegionsClient lists regions.
type RegionsClient interface {
	List(ctx context.Context) ([]Region, error)
}

// SizesClient lists droplet sizes.
type SizesClient interface {
	List(ctx context.Context) ([]Size, error)
}

// ActionsClient provides access to the account-wide action log.
type ActionsClient interface {
	List(ctx context.Context) ([]Action, error)
	Get(ctx context.Context, id int) (*Action, error)
}

// AccountClient provides access to the authenticated account.
type AccountClient interface {
	Get(ctx context.Context) (*Account, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
//
// AccessToken is an opaque bearer token sent on every request. The client
// performs no refresh or expiry handling; obtaining and rotating the token
// is the caller's concern. Each operation performs exactly one HTTP
// exchange: there are no retries, no response caching, and no pagination
// traversal. Per-request deadlines are controlled via the context passed to
// client methods.
type Config struct {
	// APIEndpoint: base URL for the API. oceanclient.New normalizes this
	// value by trimming a trailing slash and adding "https://" if no scheme
	// is present; when empty, the production endpoint is used.
	APIEndpoint string

	// AccessToken: bearer token presented on every call.
	AccessToken string

	// HTTPClient: optional transport override. When nil, a client with
	// a default timeout is used.
	HTTPClient *http.Client

	// HTTPTimeout: timeout applied to the default transport when
	// HTTPClient is nil.
	HTTPTimeout time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
