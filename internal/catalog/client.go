package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"artisty/internal/domain"
)

const iiifBase = "https://www.artic.edu/iiif/2"

// Client fetches artwork records from the public catalog API. The catalog is
// read-only; failures are terminal for the single call and are never retried.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type listResponse struct {
	Data       []domain.Artwork  `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

type detailResponse struct {
	Data *domain.Artwork `json:"data"`
}

// List fetches one page of artworks.
func (c *Client) List(ctx context.Context, page, limit int) ([]domain.Artwork, domain.Pagination, error) {
	url := fmt.Sprintf("%s/artworks?page=%d&limit=%d", c.baseURL, page, limit)

	var out listResponse
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list artworks: %w", err)
	}
	return out.Data, out.Pagination, nil
}

// Get fetches a single artwork by catalog id.
func (c *Client) Get(ctx context.Context, id int) (*domain.Artwork, error) {
	url := fmt.Sprintf("%s/artworks/%d", c.baseURL, id)

	var out detailResponse
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, fmt.Errorf("get artwork %d: %w", id, err)
	}
	if out.Data == nil {
		return nil, domain.ErrNotFound
	}
	return out.Data, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IIIFImageURL builds the image URL for an artwork image id at the given
// width. Returns "" for an empty image id.
func IIIFImageURL(imageID string, width int) string {
	if imageID == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/full/%d,/0/default.jpg", iiifBase, imageID, width)
}
