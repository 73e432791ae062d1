package paypal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/GlebRadaev/tipsters/pkg/clients"
	"github.com/google/uuid"
)

const (
	LiveBaseURL    = "https://api-m.paypal.com"
	SandboxBaseURL = "https://api-m.sandbox.paypal.com"

	ModeLive    = "live"
	ModeSandbox = "sandbox"

	StatusCompleted = "COMPLETED"

	currency = "EUR"
)

var ErrNotConfigured = errors.New("paypal credentials not configured")

// APIError is a non-2xx reply from PayPal.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

type Credentials struct {
	ClientID     string
	ClientSecret string
	Mode         string
	BaseURL      string
}

// Endpoint returns the explicit base URL, else the one implied by the mode.
func (c Credentials) Endpoint() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if strings.EqualFold(c.Mode, ModeLive) {
		return LiveBaseURL
	}
	return SandboxBaseURL
}

type Sender interface {
	Send(ctx context.Context, method, url string, headers http.Header, body []byte) (*clients.Response, error)
}

type Client struct {
	http      Sender
	requestID func() string
}

func New(sender Sender) *Client {
	return &Client{http: sender, requestID: uuid.NewString}
}

type Order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Capture struct {
	OrderID    string
	Status     string
	CustomID   string
	Amount     string
	PayerEmail string
}

// BetID reads the bet id carried in custom_id. ok is false when absent or malformed.
func (c *Capture) BetID() (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.CustomID))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	CustomID    string `json:"custom_id"`
	Description string `json:"description,omitempty"`
	Amount      amount `json:"amount"`
}

type createOrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

type captureResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		CustomID string `json:"custom_id"`
		Payments struct {
			Captures []struct {
				CustomID string `json:"custom_id"`
				Amount   amount `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
	Payer struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
}

func (c *Client) Token(ctx context.Context, creds Credentials) (string, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return "", ErrNotConfigured
	}
	basic := base64.StdEncoding.EncodeToString([]byte(creds.ClientID + ":" + creds.ClientSecret))
	headers := http.Header{}
	headers.Set("Authorization", "Basic "+basic)
	headers.Set("Content-Type", "application/x-www-form-urlencoded")
	form := url.Values{"grant_type": {"client_credentials"}}

	var resp tokenResponse
	if err := c.do(ctx, "token", creds.Endpoint()+"/v1/oauth2/token", headers, []byte(form.Encode()), &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errors.New("paypal token: empty access token")
	}
	return resp.AccessToken, nil
}

// CreateOrder opens a CAPTURE order for one bet slip. value is a 2dp EUR amount.
func (c *Client) CreateOrder(ctx context.Context, creds Credentials, betID int, value, description string) (*Order, error) {
	token, err := c.Token(ctx, creds)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			CustomID:    strconv.Itoa(betID),
			Description: description,
			Amount:      amount{CurrencyCode: currency, Value: value},
		}},
	})
	if err != nil {
		return nil, err
	}

	var order Order
	if err := c.do(ctx, "create order", creds.Endpoint()+"/v2/checkout/orders", jsonHeaders(token, c.requestID()), body, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, errors.New("paypal create order: missing order id")
	}
	return &order, nil
}

func (c *Client) CaptureOrder(ctx context.Context, creds Credentials, orderID string) (*Capture, error) {
	token, err := c.Token(ctx, creds)
	if err != nil {
		return nil, err
	}
	endpoint := creds.Endpoint() + "/v2/checkout/orders/" + url.PathEscape(orderID) + "/capture"

	var resp captureResponse
	headers := jsonHeaders(token, CaptureRequestID(orderID))
	if err := c.do(ctx, "capture order", endpoint, headers, []byte("{}"), &resp); err != nil {
		return nil, err
	}

	capture := &Capture{
		OrderID:    resp.ID,
		Status:     resp.Status,
		PayerEmail: resp.Payer.EmailAddress,
	}
	if len(resp.PurchaseUnits) > 0 {
		unit := resp.PurchaseUnits[0]
		capture.CustomID = unit.CustomID
		if len(unit.Payments.Captures) > 0 {
			first := unit.Payments.Captures[0]
			if first.CustomID != "" {
				capture.CustomID = first.CustomID
			}
			capture.Amount = first.Amount.Value
		}
	}
	return capture, nil
}

// CaptureRequestID is stable per order, so a retried capture replays the
// original COMPLETED reply instead of failing with ORDER_ALREADY_CAPTURED.
func CaptureRequestID(orderID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("capture:"+orderID)).String()
}

func jsonHeaders(token, requestID string) http.Header {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("Content-Type", "application/json")
	headers.Set("PayPal-Request-Id", requestID)
	return headers
}

func (c *Client) do(ctx context.Context, op, endpoint string, headers http.Header, body []byte, dst any) error {
	resp, err := c.http.Send(ctx, http.MethodPost, endpoint, headers, body)
	if err != nil {
		return fmt.Errorf("paypal %s: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	if err := json.Unmarshal(resp.Body, dst); err != nil {
		return fmt.Errorf("paypal %s: failed to decode response: %w", op, err)
	}
	return nil
}
