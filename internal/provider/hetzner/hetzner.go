// Package hetzner implements the provider boundary against the Hetzner
// DNS API (https://dns.hetzner.com/api/v1).
package hetzner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jroosing/fleetdns/internal/provider"
)

const defaultBaseURL = "https://dns.hetzner.com/api/v1"

func init() {
	provider.Register("hetzner", func(logger *slog.Logger, settings map[string]string) (provider.Provider, error) {
		return New(logger, settings)
	})
}

// Client implements provider.Provider for Hetzner DNS.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
	logger   *slog.Logger
}

// New creates a Hetzner provider from the given settings map.
// Required settings: api_token. Optional: base_url.
func New(logger *slog.Logger, settings map[string]string) (*Client, error) {
	apiToken := settings["api_token"]
	if apiToken == "" {
		return nil, fmt.Errorf("hetzner: missing required setting 'api_token'")
	}
	baseURL := settings["base_url"]
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}, nil
}

func (c *Client) Name() string { return "hetzner" }

// Wire types. Hetzner spells the zone apex as "@".

type zoneJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	TTL  int    `json:"ttl,omitempty"`
}

type recordJSON struct {
	ID     string `json:"id,omitempty"`
	ZoneID string `json:"zone_id"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	TTL    int    `json:"ttl,omitempty"`
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("hetzner: marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("hetzner: build request: %w", err)
	}
	req.Header.Set("Auth-API-Token", c.apiToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hetzner: %s %s: %w", method, path, err)
	}
	return resp, nil
}

func apiError(op string, resp *http.Response) error {
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("hetzner: %s returned status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(respBody)))
}

func (c *Client) findZone(ctx context.Context, domain string) (zoneJSON, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "zones?name="+url.QueryEscape(domain), nil)
	if err != nil {
		return zoneJSON{}, err
	}
	defer resp.Body.Close()

	// Hetzner answers 404 when the name filter matches nothing.
	if resp.StatusCode == http.StatusNotFound {
		return zoneJSON{}, fmt.Errorf("%s: %w", domain, provider.ErrZoneNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return zoneJSON{}, apiError("get zones", resp)
	}

	var result struct {
		Zones []zoneJSON `json:"zones"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return zoneJSON{}, fmt.Errorf("hetzner: decode zones response: %w", err)
	}
	for _, z := range result.Zones {
		if strings.EqualFold(z.Name, domain) {
			return z, nil
		}
	}
	return zoneJSON{}, fmt.Errorf("%s: %w", domain, provider.ErrZoneNotFound)
}

// GetZone fetches the zone by domain name.
func (c *Client) GetZone(ctx context.Context, domain string) (provider.Zone, error) {
	z, err := c.findZone(ctx, domain)
	if err != nil {
		return provider.Zone{}, err
	}
	return provider.Zone{ID: z.ID, Name: z.Name, Kind: "primary"}, nil
}

// EnsureZone creates the zone if missing. Hetzner zones carry neither a
// contact email nor labels, so those attributes are dropped.
func (c *Client) EnsureZone(ctx context.Context, zone provider.Zone) (provider.Zone, error) {
	existing, err := c.GetZone(ctx, zone.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, provider.ErrZoneNotFound) {
		return provider.Zone{}, err
	}

	c.logger.Info("creating zone", "domain", zone.Name)
	resp, err := c.doRequest(ctx, http.MethodPost, "zones", zoneJSON{Name: zone.Name})
	if err != nil {
		return provider.Zone{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return provider.Zone{}, apiError("create zone", resp)
	}

	var result struct {
		Zone zoneJSON `json:"zone"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return provider.Zone{}, fmt.Errorf("hetzner: decode create zone response: %w", err)
	}
	return provider.Zone{ID: result.Zone.ID, Name: result.Zone.Name, Kind: "primary"}, nil
}

// DeleteZone removes the zone and all its records.
func (c *Client) DeleteZone(ctx context.Context, domain string) error {
	z, err := c.findZone(ctx, domain)
	if err != nil {
		return err
	}

	c.logger.Info("deleting zone", "domain", domain, "zone_id", z.ID)
	resp, err := c.doRequest(ctx, http.MethodDelete, "zones/"+z.ID, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError("delete zone", resp)
	}
	return nil
}

// Records lists all records in the zone.
func (c *Client) Records(ctx context.Context, domain string) ([]provider.Record, error) {
	z, err := c.findZone(ctx, domain)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "records?zone_id="+url.QueryEscape(z.ID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("get records", resp)
	}

	var result struct {
		Records []recordJSON `json:"records"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("hetzner: decode records response: %w", err)
	}

	records := make([]provider.Record, 0, len(result.Records))
	for _, r := range result.Records {
		records = append(records, provider.Record{
			ID:    r.ID,
			Host:  provider.NormalizeHost(r.Name, domain),
			Type:  r.Type,
			Value: r.Value,
			TTL:   r.TTL,
		})
	}
	return records, nil
}

// CreateRecord adds a record to the zone.
func (c *Client) CreateRecord(ctx context.Context, domain string, rec provider.Record) error {
	z, err := c.findZone(ctx, domain)
	if err != nil {
		return err
	}

	c.logger.Info("creating record", "domain", domain, "host", rec.Host, "type", rec.Type, "value", rec.Value)
	resp, err := c.doRequest(ctx, http.MethodPost, "records", recordJSON{
		ZoneID: z.ID,
		Type:   rec.Type,
		Name:   hetznerName(rec.Host),
		Value:  rec.Value,
		TTL:    rec.TTL,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return apiError("create record", resp)
	}
	return nil
}

// UpdateRecord rewrites the record identified by rec.ID.
func (c *Client) UpdateRecord(ctx context.Context, domain string, rec provider.Record) error {
	if rec.ID == "" {
		return fmt.Errorf("hetzner: update requires a record ID: %w", provider.ErrRecordNotFound)
	}
	z, err := c.findZone(ctx, domain)
	if err != nil {
		return err
	}

	c.logger.Info("updating record", "domain", domain, "record_id", rec.ID, "value", rec.Value)
	resp, err := c.doRequest(ctx, http.MethodPut, "records/"+rec.ID, recordJSON{
		ZoneID: z.ID,
		Type:   rec.Type,
		Name:   hetznerName(rec.Host),
		Value:  rec.Value,
		TTL:    rec.TTL,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", rec.ID, provider.ErrRecordNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return apiError("update record", resp)
	}
	return nil
}

// DeleteRecord removes the record with the given provider ID.
func (c *Client) DeleteRecord(ctx context.Context, domain string, recordID string) error {
	c.logger.Info("deleting record", "domain", domain, "record_id", recordID)
	resp, err := c.doRequest(ctx, http.MethodDelete, "records/"+recordID, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", recordID, provider.ErrRecordNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return apiError("delete record", resp)
	}
	return nil
}

func hetznerName(host string) string {
	if host == "" {
		return "@"
	}
	return host
}
