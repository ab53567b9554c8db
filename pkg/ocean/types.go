package ocean

import (
	"time"
)

// Droplet represents a virtual server instance.
type Droplet struct {
	ID        int       `json:"id"         yaml:"id"`
	Name      string    `json:"name"       yaml:"name"`
	Memory    int       `json:"memory"     yaml:"memory"`
	VCPUs     int       `json:"vcpus"      yaml:"vcpus"`
	Disk      int       `json:"disk"       yaml:"disk"`
	Region    *Region   `json:"region"     yaml:"region"`
	Image     *Image    `json:"image"      yaml:"image"`
	Size      *Size     `json:"size"       yaml:"size"`
	SizeSlug  string    `json:"size_slug"  yaml:"size_slug"`
	Networks  *Networks `json:"networks"   yaml:"networks"`
	Kernel    *Kernel   `json:"kernel"     yaml:"kernel"`
	Status    string    `json:"status"     yaml:"status"`
	Locked    bool      `json:"locked"     yaml:"locked"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	Features    []string `json:"features,omitempty"     yaml:"features,omitempty"`
	BackupIDs   []int    `json:"backup_ids,omitempty"   yaml:"backup_ids,omitempty"`
	SnapshotIDs []int    `json:"snapshot_ids,omitempty" yaml:"snapshot_ids,omitempty"`
}

// PublicIPv4 returns the droplet's first public IPv4 address, or "".
func (d *Droplet) PublicIPv4() string {
	if d.Networks == nil {
		return ""
	}

	for _, network := range d.Networks.V4 {
		if network.Type == "public" {
			return network.IPAddress
		}
	}

	return ""
}

// Networks groups a droplet's network interfaces by IP version.
type Networks struct {
	V4 []Network `json:"v4,omitempty" yaml:"v4,omitempty"`
	V6 []Network `json:"v6,omitempty" yaml:"v6,omitempty"`
}

// Network represents a single droplet network interface.
type Network struct {
	IPAddress string `json:"ip_address" yaml:"ip_address"`
	Netmask   string `json:"netmask"    yaml:"netmask"`
	Gateway   string `json:"gateway"    yaml:"gateway"`
	Type      string `json:"type"       yaml:"type"`
}

// Kernel represents a droplet kernel.
type Kernel struct {
	ID      int    `json:"id"      yaml:"id"`
	Name    string `json:"name"    yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// Region represents a datacenter region.
type Region struct {
	Slug      string   `json:"slug"               yaml:"slug"`
	Name      string   `json:"name"               yaml:"name"`
	Sizes     []string `json:"sizes,omitempty"    yaml:"sizes,omitempty"`
	Available bool     `json:"available"          yaml:"available"`
	Features  []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// Size represents a droplet size offering.
type Size struct {
	Slug         string   `json:"slug"              yaml:"slug"`
	Memory       int      `json:"memory"            yaml:"memory"`
	VCPUs        int      `json:"vcpus"             yaml:"vcpus"`
	Disk         int      `json:"disk"              yaml:"disk"`
	Transfer     float64  `json:"transfer"          yaml:"transfer"`
	PriceMonthly float64  `json:"price_monthly"     yaml:"price_monthly"`
	PriceHourly  float64  `json:"price_hourly"      yaml:"price_hourly"`
	Regions      []string `json:"regions,omitempty" yaml:"regions,omitempty"`
	Available    bool     `json:"available"         yaml:"available"`
}

// Image represents a base image, snapshot, or backup.
type Image struct {
	ID           int       `json:"id"                yaml:"id"`
	Name         string    `json:"name"              yaml:"name"`
	Distribution string    `json:"distribution"      yaml:"distribution"`
	Slug         string    `json:"slug,omitempty"    yaml:"slug,omitempty"`
	Public       bool      `json:"public"            yaml:"public"`
	Regions      []string  `json:"regions,omitempty" yaml:"regions,omitempty"`
	Type         string    `json:"type,omitempty"    yaml:"type,omitempty"`
	MinDiskSize  int       `json:"min_disk_size"     yaml:"min_disk_size"`
	CreatedAt    time.Time `json:"created_at"        yaml:"created_at"`
}

// Domain represents a DNS domain.
type Domain struct {
	Name     string `json:"name"      yaml:"name"`
	TTL      int    `json:"ttl"       yaml:"ttl"`
	ZoneFile string `json:"zone_file" yaml:"zone_file"`
}

// DomainRecord represents a single DNS record within a domain.
type DomainRecord struct {
	ID       int    `json:"id"                 yaml:"id"`
	Type     string `json:"type"               yaml:"type"`
	Name     string `json:"name"               yaml:"name"`
	Data     string `json:"data"               yaml:"data"`
	Priority *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Port     *int   `json:"port,omitempty"     yaml:"port,omitempty"`
	Weight   *int   `json:"weight,omitempty"   yaml:"weight,omitempty"`
}

// Key represents an SSH public key registered on the account.
type Key struct {
	ID          int    `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
	PublicKey   string `json:"public_key"  yaml:"public_key"`
}

// Action represents an event performed on a resource, such as a droplet
// reboot or an image transfer.
type Action struct {
	ID           int        `json:"id"                     yaml:"id"`
	Status       string     `json:"status"                 yaml:"status"`
	Type         string     `json:"type"                   yaml:"type"`
	StartedAt    time.Time  `json:"started_at"             yaml:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	ResourceID   int        `json:"resource_id"            yaml:"resource_id"`
	ResourceType string     `json:"resource_type"          yaml:"resource_type"`
	RegionSlug   string     `json:"region_slug,omitempty"  yaml:"region_slug,omitempty"`
}

// Action states.
const (
	ActionInProgress = "in-progress"
	ActionCompleted  = "completed"
	ActionErrored    = "errored"
)

// Account represents the authenticated account.
type Account struct {
	DropletLimit  int    `json:"droplet_limit"  yaml:"droplet_limit"`
	Email         string `json:"email"          yaml:"email"`
	UUID          string `json:"uuid"           yaml:"uuid"`
	EmailVerified bool   `json:"email_verified" yaml:"email_verified"`
	Status        string `json:"status"         yaml:"status"`
	StatusMessage string `json:"status_message" yaml:"status_message"`
}

// DropletCreateRequest is the body for creating a droplet.
type DropletCreateRequest struct {
	Name string `json:"name"   yaml:"name"`
	// Region is the slug of the target region, e.g. "nyc3".
	Region string `json:"region" yaml:"region"`
	// Size is the slug of the droplet size, e.g. "s-1vcpu-1gb".
	Size string `json:"size"   yaml:"size"`
	// Image is an image slug ("ubuntu-24-04-x64") or numeric image ID.
	Image string `json:"image"  yaml:"image"`

	SSHKeys           []string `json:"ssh_keys,omitempty"           yaml:"ssh_keys,omitempty"`
	Backups           bool     `json:"backups,omitempty"            yaml:"backups,omitempty"`
	IPv6              bool     `json:"ipv6,omitempty"               yaml:"ipv6,omitempty"`
	PrivateNetworking bool     `json:"private_networking,omitempty" yaml:"private_networking,omitempty"`
	UserData          string   `json:"user_data,omitempty"          yaml:"user_data,omitempty"`
}

// DomainCreateRequest is the body for creating a domain.
type DomainCreateRequest struct {
	Name string `json:"name" yaml:"name"`
	// IPAddress is the address the zone's initial apex A record points at.
	IPAddress string `json:"ip_address" yaml:"ip_address"`
}

// DomainRecordRequest is the body for creating or updating a domain record.
type DomainRecordRequest struct {
	Type     string `json:"type,omitempty"     yaml:"type,omitempty"`
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Data     string `json:"data,omitempty"     yaml:"data,omitempty"`
	Priority *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Port     *int   `json:"port,omitempty"     yaml:"port,omitempty"`
	Weight   *int   `json:"weight,omitempty"   yaml:"weight,omitempty"`
}

// KeyCreateRequest is the body for registering an SSH key.
type KeyCreateRequest struct {
	Name      string `json:"name"       yaml:"name"`
	PublicKey string `json:"public_key" yaml:"public_key"`
}

// KeyUpdateRequest is the body for renaming an SSH key.
type KeyUpdateRequest struct {
	Name string `json:"name" yaml:"name"`
}

// ImageUpdateRequest is the body for renaming an image.
type ImageUpdateRequest struct {
	Name string `json:"name" yaml:"name"`
}
