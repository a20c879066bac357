package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
)

// maxResponseBytes bounds how much of the delivery response is read.
const maxResponseBytes = 1 << 20

// Web3FormsConfig configures the Web3Forms client.
type Web3FormsConfig struct {
	URL      string
	FromName string
	Timeout  time.Duration
	RetryMax int
}

type web3FormsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type web3FormsClient struct {
	client   *retryablehttp.Client
	url      string
	fromName string
}

// Deliver posts the submission as multipart/form-data.
//
// Connection errors and 5xx responses are retried up to RetryMax times. After the
// last attempt the final response is passed through and interpreted like any other.
func (w *web3FormsClient) Deliver(
	ctx context.Context,
	accessKey string,
	submission *relayDomain.Submission,
) (*relayDomain.DeliveryResult, error) {
	body, contentType, err := w.encodeForm(accessKey, submission)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", relayDomain.ErrDeliveryFailed, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, w.url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", relayDomain.ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", relayDomain.ErrDeliveryFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var decoded web3FormsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: invalid response (status %d): %w", relayDomain.ErrDeliveryFailed, resp.StatusCode, err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300 && decoded.Success
	return &relayDomain.DeliveryResult{Success: ok, Message: decoded.Message}, nil
}

func (w *web3FormsClient) encodeForm(accessKey string, s *relayDomain.Submission) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"access_key", accessKey},
		{"name", s.Name},
		{"email", s.Email},
		{"phone", s.Phone},
		{"service", s.Service},
		{"message", s.Message},
		{"from_name", w.fromName},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), mw.FormDataContentType(), nil
}

// NewWeb3FormsClient creates a FormDeliveryClient backed by go-retryablehttp.
func NewWeb3FormsClient(cfg Web3FormsConfig, logger *slog.Logger) FormDeliveryClient {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = cfg.Timeout
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = nil
	if logger != nil {
		client.Logger = logger
	}

	url := cfg.URL
	if url == "" {
		url = relayDomain.DefaultDeliveryURL
	}
	fromName := cfg.FromName
	if fromName == "" {
		fromName = relayDomain.DefaultFromName
	}

	return &web3FormsClient{
		client:   client,
		url:      url,
		fromName: fromName,
	}
}
