package client

import (
	"context"

	"github.com/tidewater-io/ocean/internal/http"
	"github.com/tidewater-io/ocean/pkg/ocean"
)

// DropletsClient implements the ocean.DropletsClient interface.
type DropletsClient struct {
	httpClient *http.Client
}

// NewDropletsClient creates a new DropletsClient.
func NewDropletsClient(httpClient *http.Client) *DropletsClient {
	return &DropletsClient{
		httpClient: httpClient,
	}
}

type dropletsRoot struct {
	Droplets []ocean.Droplet `json:"droplets"`
	Meta     *listMeta       `json:"meta,omitempty"`
	Links    *listLinks      `json:"links,omitempty"`
}

type dropletRoot struct {
	Droplet *ocean.Droplet `json:"droplet"`
}

type kernelsRoot struct {
	Kernels []ocean.Kernel `json:"kernels"`
	Meta    *listMeta      `json:"meta,omitempty"`
}

type snapshotsRoot struct {
	Snapshots []ocean.Image `json:"snapshots"`
	Meta      *listMeta     `json:"meta,omitempty"`
}

type backupsRoot struct {
	Backups []ocean.Image `json:"backups"`
	Meta    *listMeta     `json:"meta,omitempty"`
}

type actionsRoot struct {
	Actions []ocean.Action `json:"actions"`
	Meta    *listMeta      `json:"meta,omitempty"`
	Links   *listLinks     `json:"links,omitempty"`
}

type actionRoot struct {
	Action *ocean.Action `json:"action"`
}

// List lists all droplets.
func (c *DropletsClient) List(ctx context.Context) ([]ocean.Droplet, error) {
	root, err := get[dropletsRoot](ctx, c.httpClient, http.BuildPath("droplets"), "droplets")
	if err != nil {
		return nil, err
	}

	return root.Droplets, nil
}

// Get retrieves a specific droplet.
func (c *DropletsClient) Get(ctx context.Context, id int) (*ocean.Droplet, error) {
	root, err := get[dropletRoot](ctx, c.httpClient, http.BuildPath("droplets", id), "droplet")
	if err != nil {
		return nil, err
	}

	return root.Droplet, nil
}

// Create creates a new droplet.
func (c *DropletsClient) Create(ctx context.Context, request *ocean.DropletCreateRequest) (*ocean.Droplet, error) {
	root, err := post[dropletRoot](ctx, c.httpClient, http.BuildPath("droplets"), request, "droplet")
	if err != nil {
		return nil, err
	}

	return root.Droplet, nil
}

// Delete destroys a droplet.
func (c *DropletsClient) Delete(ctx context.Context, id int) error {
	return del(ctx, c.httpClient, http.BuildPath("droplets", id), "droplet")
}

// Kernels lists kernels available to a droplet.
func (c *DropletsClient) Kernels(ctx context.Context, id int) ([]ocean.Kernel, error) {
	root, err := get[kernelsRoot](ctx, c.httpClient, http.BuildPath("droplets", id, "kernels"), "droplet kernels")
	if err != nil {
		return nil, err
	}

	return root.Kernels, nil
}

// Snapshots lists snapshots taken of a droplet.
func (c *DropletsClient) Snapshots(ctx context.Context, id int) ([]ocean.Image, error) {
	root, err := get[snapshotsRoot](ctx, c.httpClient, http.BuildPath("droplets", id, "snapshots"), "droplet snapshots")
	if err != nil {
		return nil, err
	}

	return root.Snapshots, nil
}

// Backups lists backups of a droplet.
func (c *DropletsClient) Backups(ctx context.Context, id int) ([]ocean.Image, error) {
	root, err := get[backupsRoot](ctx, c.httpClient, http.BuildPath("droplets", id, "backups"), "droplet backups")
	if err != nil {
		return nil, err
	}

	return root.Backups, nil
}

// Actions lists actions performed on a droplet.
func (c *DropletsClient) Actions(ctx context.Context, id int) ([]ocean.Action, error) {
	root, err := get[actionsRoot](ctx, c.httpClient, http.BuildPath("droplets", id, "actions"), "droplet actions")
	if err != nil {
		return nil, err
	}

	return root.Actions, nil
}

// GetAction retrieves a single action performed on a droplet.
func (c *DropletsClient) GetAction(ctx context.Context, id, actionID int) (*ocean.Action, error) {
	root, err := get[actionRoot](ctx, c.httpClient, http.BuildPath("droplets", id, "actions", actionID), "droplet action")
	if err != nil {
		return nil, err
	}

	return root.Action, nil
}

// act posts an action trigger to a droplet. Triggers with no parameters
// send only the type field.
func (c *DropletsClient) act(ctx context.Context, id int, body map[string]interface{}) (*ocean.Action, error) {
	root, err := post[actionRoot](ctx, c.httpClient, http.BuildPath("droplets", id, "actions"), body, "droplet action")
	if err != nil {
		return nil, err
	}

	return root.Action, nil
}

// Reboot triggers a graceful reboot.
func (c *DropletsClient) Reboot(ctx context.Context, id int) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "reboot"})
}

// PowerCycle triggers a hard reset.
func (c *DropletsClient) PowerCycle(ctx context.Context, id int) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "power_cycle"})
}

// Shutdown triggers a graceful shutdown.
func (c *DropletsClient) Shutdown(ctx context.Context, id int) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "shutdown"})
}

// PowerOff powers the droplet off hard.
func (c *DropletsClient) PowerOff(ctx context.Context, id int) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "power_off"})
}

// PowerOn powers the droplet on.
func (c *DropletsClient) PowerOn(ctx context.Context, id int) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "power_on"})
}

// PasswordReset resets the root password.
func (c *DropletsClient) PasswordReset(ctx context.Context, id int) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "password_reset"})
}

// Resize resizes the droplet to the given size slug.
func (c *DropletsClient) Resize(ctx context.Context, id int, size string) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "resize", "size": size})
}

// Snapshot takes a named snapshot of the droplet.
func (c *DropletsClient) Snapshot(ctx context.Context, id int, name string) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "snapshot", "name": name})
}

// Rename renames the droplet.
func (c *DropletsClient) Rename(ctx context.Context, id int, name string) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "rename", "name": name})
}

// Restore restores the droplet from a backup image ID.
func (c *DropletsClient) Restore(ctx context.Context, id, imageID int) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "restore", "image": imageID})
}

// Rebuild rebuilds the droplet from an image ID or slug.
func (c *DropletsClient) Rebuild(ctx context.Context, id int, image string) (*ocean.Action, error) {
	return c.act(ctx, id, map[string]interface{}{"type": "rebuild", "image": image})
}
