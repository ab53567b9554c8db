package client

import (
	"context"

	"github.com/tidewater-io/ocean/internal/http"
	"github.com/tidewater-io/ocean/pkg/ocean"
)

// DomainsClient implements the ocean.DomainsClient interface.
//
// Domain names supplied by callers are normalized by the path builder
// (lower-cased and percent-encoded) before they are placed in a URL.
type DomainsClient struct {
	httpClient *http.Client
}

// NewDomainsClient creates a new DomainsClient.
func NewDomainsClient(httpClient *http.Client) *DomainsClient {
	return &DomainsClient{
		httpClient: httpClient,
	}
}

type domainsRoot struct {
	Domains []ocean.Domain `json:"domains"`
	Meta    *listMeta      `json:"meta,omitempty"`
	Links   *listLinks     `json:"links,omitempty"`
}

type domainRoot struct {
	Domain *ocean.Domain `json:"domain"`
}

type domainRecordsRoot struct {
	DomainRecords []ocean.DomainRecord `json:"domain_records"`
	Meta          *listMeta            `json:"meta,omitempty"`
	Links         *listLinks           `json:"links,omitempty"`
}

type domainRecordRoot struct {
	DomainRecord *ocean.DomainRecord `json:"domain_record"`
}

// List lists all domains.
func (c *DomainsClient) List(ctx context.Context) ([]ocean.Domain, error) {
	root, err := get[domainsRoot](ctx, c.httpClient, http.BuildPath("domains"), "domains")
	if err != nil {
		return nil, err
	}

	return root.Domains, nil
}

// Create creates a new domain.
func (c *DomainsClient) Create(ctx context.Context, request *ocean.DomainCreateRequest) (*ocean.Domain, error) {
	root, err := post[domainRoot](ctx, c.httpClient, http.BuildPath("domains"), request, "domain")
	if err != nil {
		return nil, err
	}

	return root.Domain, nil
}

// Get retrieves a specific domain.
func (c *DomainsClient) Get(ctx context.Context, name string) (*ocean.Domain, error) {
	root, err := get[domainRoot](ctx, c.httpClient, http.BuildPath("domains", name), "domain")
	if err != nil {
		return nil, err
	}

	return root.Domain, nil
}

// Delete deletes a domain and all of its records.
func (c *DomainsClient) Delete(ctx context.Context, name string) error {
	return del(ctx, c.httpClient, http.BuildPath("domains", name), "domain")
}

// Records lists all records in a domain.
func (c *DomainsClient) Records(ctx context.Context, domain string) ([]ocean.DomainRecord, error) {
	root, err := get[domainRecordsRoot](ctx, c.httpClient, http.BuildPath("domains", domain, "records"), "domain records")
	if err != nil {
		return nil, err
	}

	return root.DomainRecords, nil
}

// GetRecord retrieves a specific record in a domain.
func (c *DomainsClient) GetRecord(ctx context.Context, domain string, id int) (*ocean.DomainRecord, error) {
	root, err := get[domainRecordRoot](ctx, c.httpClient, http.BuildPath("domains", domain, "records", id), "domain record")
	if err != nil {
		return nil, err
	}

	return root.DomainRecord, nil
}

// CreateRecord creates a record in a domain.
func (c *DomainsClient) CreateRecord(ctx context.Context, domain string, request *ocean.DomainRecordRequest) (*ocean.DomainRecord, error) {
	root, err := post[domainRecordRoot](ctx, c.httpClient, http.BuildPath("domains", domain, "records"), request, "domain record")
	if err != nil {
		return nil, err
	}

	return root.DomainRecord, nil
}

// UpdateRecord updates a record in a domain.
func (c *DomainsClient) UpdateRecord(ctx context.Context, domain string, id int, request *ocean.DomainRecordRequest) (*ocean.DomainRecord, error) {
	root, err := put[domainRecordRoot](ctx, c.httpClient, http.BuildPath("domains", domain, "records", id), request, "domain record")
	if err != nil {
		return nil, err
	}

	return root.DomainRecord, nil
}

// DeleteRecord deletes a record from a domain.
func (c *DomainsClient) DeleteRecord(ctx context.Context, domain string, id int) error {
	return del(ctx, c.httpClient, http.BuildPath("domains", domain, "records", id), "domain record")
}
