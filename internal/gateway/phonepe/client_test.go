package phonepe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subpay/pkg/utils"
)

func testConfig(baseURL string) Config {
	return Config{
		MerchantID:     "MERCHANTUAT",
		MerchantUserID: "MUID123",
		MobileNumber:   "9999999999",
		SaltKey:        testSaltKey,
		SaltIndex:      "1",
		BaseURL:        baseURL,
		AppBaseURL:     "https://app.example.com/",
	}
}

func TestPaySignsAndWrapsPayload(t *testing.T) {
	var gotVerify, gotEncoded string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/pg/v1/pay", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotVerify = r.Header.Get("X-VERIFY")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var envelope struct {
			Request string `json:"request"`
		}
		require.NoError(t, json.Unmarshal(body, &envelope))
		gotEncoded = envelope.Request

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"code":"PAYMENT_INITIATED","data":{"instrumentResponse":{"redirectInfo":{"url":"https://pay.example.com/page"}}}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	resp, err := client.Pay(context.Background(), PayOrder{
		MerchantTransactionID: "MT17000000000001a2b3c",
		Amount:                49900,
		RedirectURL:           "https://app.example.com/status?user=u1|p1|MT17000000000001a2b3c",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "https://pay.example.com/page", resp.RedirectURL())

	// The header must verify against the exact bytes that were sent.
	assert.Equal(t, SignPayload(gotEncoded, "/pg/v1/pay", testSaltKey, "1"), gotVerify)

	decoded, err := base64.StdEncoding.DecodeString(gotEncoded)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(decoded, &payload))
	assert.Equal(t, "MERCHANTUAT", payload["merchantId"])
	assert.Equal(t, "MT17000000000001a2b3c", payload["merchantTransactionId"])
	assert.Equal(t, "MUID123", payload["merchantUserId"])
	assert.Equal(t, float64(49900), payload["amount"])
	assert.Equal(t, "REDIRECT", payload["redirectMode"])
	assert.Equal(t, map[string]interface{}{"type": "PAY_PAGE"}, payload["paymentInstrument"])
}

func TestStatusHeadersAndPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/pg/v1/status/MERCHANTUAT/MT123", r.URL.Path)
		require.Equal(t, "MERCHANTUAT", r.Header.Get("X-MERCHANT-ID"))
		require.Equal(t,
			SignPath("/pg/v1/status/MERCHANTUAT/MT123", testSaltKey, "1"),
			r.Header.Get("X-VERIFY"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"code":"PAYMENT_SUCCESS"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	resp, err := client.Status(context.Background(), "MT123")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "PAYMENT_SUCCESS", resp.Code)
}

func TestClientNon2xxIsGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Status(context.Background(), "MT123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrGatewayFailure))
}

func TestClientMalformedJSONIsGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Status(context.Background(), "MT123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrGatewayFailure))
}

func TestCallbackURLEncodesCorrelation(t *testing.T) {
	client := NewClient(testConfig("http://unused"))
	got := client.CallbackURL("u1", "p1", "MT42")
	assert.Equal(t, "https://app.example.com/status?user=u1|p1|MT42", got)
}
