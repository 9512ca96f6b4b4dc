package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultFast2SMSURL = "https://www.fast2sms.com/dev/bulkV2"

type Fast2SMSAdapter struct {
	APIKey     string
	URL        string
	httpClient *http.Client
}

func NewFast2SMSAdapter(apiKey, url string, timeout time.Duration) (*Fast2SMSAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("fast2sms api key is required")
	}
	if url == "" {
		url = DefaultFast2SMSURL
	}
	return &Fast2SMSAdapter{
		APIKey:     apiKey,
		URL:        url,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type bulkRequest struct {
	Route    string `json:"route"`
	Message  string `json:"message"`
	Language string `json:"language"`
	Flash    int    `json:"flash"`
	Numbers  string `json:"numbers"`
}

type bulkResponse struct {
	Return    bool            `json:"return"`
	RequestID string          `json:"request_id"`
	Message   json.RawMessage `json:"message"`
}

func (f *Fast2SMSAdapter) Send(ctx context.Context, mobile, message string) error {
	body, err := json.Marshal(bulkRequest{
		Route:    "q", // quick sms, no DLT template needed
		Message:  message,
		Language: "english",
		Flash:    0,
		Numbers:  mobile,
	})
	if err != nil {
		return fmt.Errorf("fast2sms encode: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("fast2sms request: %w", err)
	}
	httpReq.Header.Set("authorization", f.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("fast2sms send: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fast2sms send failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	var res bulkResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return fmt.Errorf("fast2sms decode: %w body=%s", err, string(raw))
	}
	if !res.Return {
		return fmt.Errorf("fast2sms rejected message: %s", string(res.Message))
	}
	return nil
}
