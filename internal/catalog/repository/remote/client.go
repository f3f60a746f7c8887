package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"menu-catalog-admin/internal/catalog/repository"
)

// Client is the HTTP wrapper for the remote catalog REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new catalog HTTP client. The access token is injected
// on every request by an oauth2 transport. ratePerMin throttles outbound
// calls; zero or negative disables throttling.
func NewClient(baseURL, accessToken string, ratePerMin int) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if accessToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		httpClient = oauth2.NewClient(context.Background(), src)
		httpClient.Timeout = 30 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if ratePerMin > 0 {
		burst := ratePerMin / 10
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), burst)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// ListCategories fetches all categories via GET /categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/categories", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list categories request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog categories API: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, decodeAPIError(resp)
	}

	var listResp struct {
		Data []Category `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode categories response: %w", err)
	}
	return listResp.Data, nil
}

// ListMenuItems fetches the full menu item collection via GET /menu-items.
func (c *Client) ListMenuItems(ctx context.Context) ([]MenuItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/menu-items", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list menu items request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog list API: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, decodeAPIError(resp)
	}

	var listResp struct {
		Data []MenuItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode menu items response: %w", err)
	}
	return listResp.Data, nil
}

// CreateMenuItem creates a menu item via multipart POST /menu-items.
func (c *Client) CreateMenuItem(ctx context.Context, form MenuItemForm) (*MenuItem, error) {
	return c.submitForm(ctx, http.MethodPost, c.baseURL+"/menu-items", form)
}

// UpdateMenuItem partially updates a menu item via multipart PATCH /menu-items/:id.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, form MenuItemForm) (*MenuItem, error) {
	return c.submitForm(ctx, http.MethodPatch, fmt.Sprintf("%s/menu-items/%s", c.baseURL, id), form)
}

// DeleteMenuItem removes a menu item via DELETE /menu-items/:id.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/menu-items/%s", c.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call catalog delete API: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return decodeAPIError(resp)
	}
	return nil
}

func (c *Client) submitForm(ctx context.Context, method, url string, form MenuItemForm) (*MenuItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, contentType, err := encodeForm(form)
	if err != nil {
		return nil, fmt.Errorf("failed to encode menu item form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu item request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog mutate API: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, decodeAPIError(resp)
	}

	var itemResp struct {
		Data MenuItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&itemResp); err != nil {
		return nil, fmt.Errorf("failed to decode menu item response: %w", err)
	}
	return &itemResp.Data, nil
}

// encodeForm builds the multipart body. Booleans are sent as "true"/"false"
// strings and price is passed through as typed by the operator.
func encodeForm(form MenuItemForm) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"name":        form.Name,
		"description": form.Description,
		"price":       form.Price,
		"categoryId":  form.CategoryID,
		"isFavorite":  strconv.FormatBool(form.IsFavorite),
		"isAvailable": strconv.FormatBool(form.IsAvailable),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if len(form.ImageContent) > 0 {
		part, err := w.CreateFormFile("image", form.ImageFilename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(form.ImageContent); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

// decodeAPIError converts a non-2xx reply into *repository.APIError. The
// server "message" field may be a string or a list of strings.
func decodeAPIError(resp *http.Response) error {
	apiErr := &repository.APIError{Status: resp.StatusCode}

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Message) > 0 {
		var single string
		var many []string
		if json.Unmarshal(body.Message, &single) == nil {
			apiErr.Messages = []string{single}
		} else if json.Unmarshal(body.Message, &many) == nil {
			apiErr.Messages = many
		}
	}
	return apiErr
}
