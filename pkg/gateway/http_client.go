package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// PlaceholderName is substituted for offerings the upstream returns without
// a usable name so ranking and display never crash on partial records.
const PlaceholderName = "Unnamed Product"

// HTTPClient implements CatalogGateway over the backend REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Upstream record shapes. Prices arrive as numbers or quoted strings
// depending on the collection export, so they unmarshal through flexFloat.
type offeringRecord struct {
	SysID       string    `json:"sys_id"`
	Name        string    `json:"u_name"`
	Description string    `json:"u_description"`
	Price       flexFloat `json:"u_price"`
	Category    string    `json:"u_category"`
	Status      string    `json:"u_status"`
}

type orderRecord struct {
	SysID  string    `json:"sys_id"`
	Number string    `json:"u_number"`
	Status string    `json:"u_status"`
	Total  flexFloat `json:"u_total"`
}

type userRecord struct {
	SysID string `json:"sys_id"`
	Name  string `json:"u_name"`
	Email string `json:"u_email"`
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Malformed prices degrade to 0 instead of failing the whole fetch
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

func (c *HTTPClient) ListOfferings(ctx context.Context) ([]Offering, error) {
	var records []offeringRecord
	if err := c.getJSON(ctx, "/product-offerings", &records); err != nil {
		return nil, err
	}

	offerings := make([]Offering, 0, len(records))
	for _, r := range records {
		offerings = append(offerings, normalizeOffering(r))
	}
	return offerings, nil
}

func (c *HTTPClient) GetOffering(ctx context.Context, id string) (*Offering, error) {
	var record offeringRecord
	if err := c.getJSON(ctx, "/product-offerings/"+id, &record); err != nil {
		return nil, err
	}
	offering := normalizeOffering(record)
	return &offering, nil
}

func (c *HTTPClient) ListOrders(ctx context.Context) ([]Order, error) {
	var records []orderRecord
	if err := c.getJSON(ctx, "/orders", &records); err != nil {
		return nil, err
	}

	orders := make([]Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, Order{
			ID:     r.SysID,
			Number: r.Number,
			Status: r.Status,
			Total:  float64(r.Total),
		})
	}
	return orders, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]User, error) {
	var records []userRecord
	if err := c.getJSON(ctx, "/users", &records); err != nil {
		return nil, err
	}

	users := make([]User, 0, len(records))
	for _, r := range records {
		users = append(users, User{
			ID:    r.SysID,
			Name:  r.Name,
			Email: r.Email,
		})
	}
	return users, nil
}

func normalizeOffering(r offeringRecord) Offering {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = PlaceholderName
	}
	return Offering{
		ID:          r.SysID,
		Name:        name,
		Description: r.Description,
		Price:       float64(r.Price),
		Category:    r.Category,
		Status:      r.Status,
	}
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"catalog backend returned status %d for %s: %s",
			res.StatusCode,
			path,
			string(body),
		)
	}

	return json.Unmarshal(body, out)
}
