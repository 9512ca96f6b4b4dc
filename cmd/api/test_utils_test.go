package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"vanutsav/internal/mailer"
	"vanutsav/internal/notifications"
	"vanutsav/internal/payments"
	"vanutsav/internal/sms"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testKeySecret = "test_key_secret"

type fakeGateway struct {
	mu    sync.Mutex
	calls []payments.OrderRequest
	err   error
}

func (f *fakeGateway) CreateOrder(ctx context.Context, req payments.OrderRequest) (payments.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return payments.Order{
		"id":         "order_test123",
		"entity":     "order",
		"amount":     req.Amount,
		"amount_due": req.Amount,
		"currency":   req.Currency,
		"receipt":    req.Receipt,
		"status":     "created",
	}, nil
}

type sentEmail struct {
	template string
	to       string
	data     any
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (f *fakeMailer) Send(templateFile, email string, data any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEmail{templateFile, email, data})
	return f.err
}

type sentSMS struct {
	mobile  string
	message string
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []sentSMS
	err  error
}

func (f *fakeSMS) Send(ctx context.Context, mobile, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentSMS{mobile, message})
	return f.err
}

type testDeps struct {
	gateway *fakeGateway
	mailer  *fakeMailer
	sms     *fakeSMS
}

func newTestApplication(t *testing.T, cfg config) (*application, *testDeps) {
	t.Helper()

	deps := &testDeps{
		gateway: &fakeGateway{},
		mailer:  &fakeMailer{},
		sms:     &fakeSMS{},
	}

	receipts, err := payments.NewReceiptGenerator("test")
	require.NoError(t, err)

	if cfg.notifyTimeout == 0 {
		cfg.notifyTimeout = time.Second
	}
	cfg.payment.razorpay.keySecret = testKeySecret

	logger := zap.NewNop().Sugar()

	var m mailer.Client = deps.mailer
	var s sms.Client = deps.sms

	return &application{
		config:   cfg,
		logger:   logger,
		orders:   payments.NewOrderService(deps.gateway, receipts),
		verifier: payments.NewSignatureVerifier(testKeySecret),
		notifier: notifications.NewDispatcher(m, s, logger),
	}, deps
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
