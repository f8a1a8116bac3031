package phonepe

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"subpay/pkg/utils"
)

const (
	payPath          = "/pg/v1/pay"
	statusPathPrefix = "/pg/v1/status"
)

type Config struct {
	MerchantID     string // e.g. MERCHANTUAT
	MerchantUserID string
	MobileNumber   string
	SaltKey        string // shared secret for X-VERIFY
	SaltIndex      string
	BaseURL        string // sandbox or production API base
	AppBaseURL     string // public frontend base for redirect URLs
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// PayOrder is one payment-page request toward the gateway.
type PayOrder struct {
	MerchantTransactionID string
	Amount                int64
	RedirectURL           string
}

// payRequest is the envelope PhonePe expects. Field declaration order fixes
// the JSON byte order, which the X-VERIFY hash depends on.
type payRequest struct {
	MerchantID            string            `json:"merchantId"`
	MerchantTransactionID string            `json:"merchantTransactionId"`
	MerchantUserID        string            `json:"merchantUserId"`
	Amount                int64             `json:"amount"`
	RedirectURL           string            `json:"redirectUrl"`
	RedirectMode          string            `json:"redirectMode"`
	CallbackURL           string            `json:"callbackUrl"`
	MobileNumber          string            `json:"mobileNumber"`
	PaymentInstrument     paymentInstrument `json:"paymentInstrument"`
}

type paymentInstrument struct {
	Type string `json:"type"`
}

// Response is the gateway's parsed reply. Raw keeps the untouched body so
// callers can pass it through verbatim.
type Response struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Raw     json.RawMessage `json:"-"`
}

// RedirectURL extracts the hosted payment-page URL from a pay response.
// Empty when the gateway did not return one.
func (r *Response) RedirectURL() string {
	var env struct {
		Data struct {
			InstrumentResponse struct {
				RedirectInfo struct {
					URL string `json:"url"`
				} `json:"redirectInfo"`
			} `json:"instrumentResponse"`
		} `json:"data"`
	}
	if err := json.Unmarshal(r.Raw, &env); err != nil {
		return ""
	}
	return env.Data.InstrumentResponse.RedirectInfo.URL
}

// CallbackURL builds the frontend redirect target that correlates the
// payer's return trip back to (user, plan, transaction).
func (c *Client) CallbackURL(userID, planID, transactionID string) string {
	base := strings.TrimRight(c.cfg.AppBaseURL, "/")
	return fmt.Sprintf("%s/status?user=%s|%s|%s", base, userID, planID, transactionID)
}

// Pay POSTs a signed, base64-wrapped payment request to the pay endpoint.
func (c *Client) Pay(ctx context.Context, order PayOrder) (*Response, error) {
	payload := payRequest{
		MerchantID:            c.cfg.MerchantID,
		MerchantTransactionID: order.MerchantTransactionID,
		MerchantUserID:        c.cfg.MerchantUserID,
		Amount:                order.Amount,
		RedirectURL:           order.RedirectURL,
		RedirectMode:          "REDIRECT",
		CallbackURL:           order.RedirectURL,
		MobileNumber:          c.cfg.MobileNumber,
		PaymentInstrument:     paymentInstrument{Type: "PAY_PAGE"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal pay request: %v", utils.ErrGatewayFailure, err)
	}
	encoded := base64.StdEncoding.EncodeToString(body)

	envelope, err := json.Marshal(map[string]string{"request": encoded})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal envelope: %v", utils.ErrGatewayFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+payPath, bytes.NewReader(envelope))
	if err != nil {
		return nil, fmt.Errorf("%w: build pay request: %v", utils.ErrGatewayFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-VERIFY", SignPayload(encoded, payPath, c.cfg.SaltKey, c.cfg.SaltIndex))

	return c.do(req)
}

// Status GETs the signed status endpoint for one merchant transaction id.
func (c *Client) Status(ctx context.Context, merchantTransactionID string) (*Response, error) {
	path := fmt.Sprintf("%s/%s/%s", statusPathPrefix, c.cfg.MerchantID, merchantTransactionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build status request: %v", utils.ErrGatewayFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-VERIFY", SignPath(path, c.cfg.SaltKey, c.cfg.SaltIndex))
	req.Header.Set("X-MERCHANT-ID", c.cfg.MerchantID)

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGatewayFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", utils.ErrGatewayFailure, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d", utils.ErrGatewayFailure, resp.StatusCode)
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", utils.ErrGatewayFailure, err)
	}
	out.Raw = raw
	return &out, nil
}
