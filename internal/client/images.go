package client

import (
	"context"

	"github.com/tidewater-io/ocean/internal/http"
	"github.com/tidewater-io/ocean/pkg/ocean"
)

// ImagesClient implements the ocean.ImagesClient interface.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new ImagesClient.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{
		httpClient: httpClient,
	}
}

type imagesRoot struct {
	Images []ocean.Image `json:"images"`
	Meta   *listMeta     `json:"meta,omitempty"`
	Links  *listLinks    `json:"links,omitempty"`
}

type imageRoot struct {
	Image *ocean.Image `json:"image"`
}

// List lists all images visible to the account.
func (c *ImagesClient) List(ctx context.Context) ([]ocean.Image, error) {
	root, err := get[imagesRoot](ctx, c.httpClient, http.BuildPath("images"), "images")
	if err != nil {
		return nil, err
	}

	return root.Images, nil
}

// Get retrieves a specific image by ID.
func (c *ImagesClient) Get(ctx context.Context, id int) (*ocean.Image, error) {
	root, err := get[imageRoot](ctx, c.httpClient, http.BuildPath("images", id), "image")
	if err != nil {
		return nil, err
	}

	return root.Image, nil
}

// GetBySlug retrieves a public image by its slug.
func (c *ImagesClient) GetBySlug(ctx context.Context, slug string) (*ocean.Image, error) {
	root, err := get[imageRoot](ctx, c.httpClient, http.BuildPath("images", slug), "image")
	if err != nil {
		return nil, err
	}

	return root.Image, nil
}

// Update renames an image.
func (c *ImagesClient) Update(ctx context.Context, id int, request *ocean.ImageUpdateRequest) (*ocean.Image, error) {
	root, err := put[imageRoot](ctx, c.httpClient, http.BuildPath("images", id), request, "image")
	if err != nil {
		return nil, err
	}

	return root.Image, nil
}

// Delete deletes an image.
func (c *ImagesClient) Delete(ctx context.Context, id int) error {
	return del(ctx, c.httpClient, http.BuildPath("images", id), "image")
}

// Transfer triggers an image transfer to another region.
func (c *ImagesClient) Transfer(ctx context.Context, id int, region string) (*ocean.Action, error) {
	body := map[string]interface{}{"type": "transfer", "region": region}

	root, err := post[actionRoot](ctx, c.httpClient, http.BuildPath("images", id, "actions"), body, "image action")
	if err != nil {
		return nil, err
	}

	return root.Action, nil
}
