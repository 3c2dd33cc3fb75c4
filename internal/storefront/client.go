// Package storefront is the customer-facing booking workflow: fetch the
// catalog, fill a booking form for a selected package, submit it, and render
// the confirmation invoice. It talks to the backend over the same REST
// surface the browser storefront used.
package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"travelvista-backend/internal/domain/models"
)

// Client calls the booking backend. BaseURL is the API root (for example
// "http://localhost:8080/api/"); endpoint paths are appended to it.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// wirePackage tolerates the legacy record shape: capitalized keys, a single
// Availabedate string, and Price as either a number or a numeric string.
type wirePackage struct {
	ID           int64       `json:"_id"`
	Title        string      `json:"Title"`
	Description  string      `json:"Description"`
	Price        json.Number `json:"Price"`
	Availabedate string      `json:"Availabedate"`
	Image        string      `json:"Image"`
}

// FetchPackages retrieves the published catalog and normalizes each record
// into the canonical display model.
func (c *Client) FetchPackages(ctx context.Context) ([]models.TourPackage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("getallpackages"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tour packages: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch tour packages: unexpected status %d", resp.StatusCode)
	}

	var records []wirePackage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode tour packages: %w", err)
	}

	out := make([]models.TourPackage, 0, len(records))
	for _, rec := range records {
		price, _ := rec.Price.Int64()
		var dates []string
		if d := strings.TrimSpace(rec.Availabedate); d != "" {
			dates = []string{d}
		}
		out = append(out, models.TourPackage{
			ID:             rec.ID,
			Title:          rec.Title,
			Description:    rec.Description,
			Price:          price,
			AvailableDates: dates,
			Image:          rec.Image,
		})
	}
	return out, nil
}
