package main

import (
	"expvar"
	"fmt"
	"os"
	"runtime"
	"time"

	"vanutsav/internal/env"
	"vanutsav/internal/mailer"
	"vanutsav/internal/notifications"
	"vanutsav/internal/payments"
	"vanutsav/internal/sms"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			Vanutsav Payments API
//	@description	Razorpay order creation and payment verification for Vanutsav Agro Tourism bookings.

//	@contact.name	Vanutsav Agro Tourism

//	@BasePath	/

func main() {
	// .env is optional; production reads the real environment
	envErr := godotenv.Load()

	cfg := config{
		addr:   ":" + env.GetString("PORT", "3000"),
		env:    env.GetString("ENV", "development"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:3000"),
		payment: paymentConfig{
			razorpay: razorpayConfig{
				keyID:     env.GetString("RAZORPAY_KEY_ID", ""),
				keySecret: env.GetString("RAZORPAY_KEY_SECRET", ""),
				timeout:   env.GetDuration("RAZORPAY_TIMEOUT", 10*time.Second),
			},
			receiptSalt: env.GetString("RECEIPT_SALT", "vanutsav"),
		},
		mail: mailConfig{
			host:      env.GetString("SMTP_HOST", "smtp.gmail.com"),
			port:      env.GetInt("SMTP_PORT", 587),
			username:  env.GetString("GMAIL_USER", ""),
			password:  env.GetString("GMAIL_APP_PASS", ""),
			fromEmail: env.GetString("MAIL_FROM", ""),
		},
		sms: smsConfig{
			apiKey: env.GetString("FAST2SMS_API_KEY", ""),
			url:    env.GetString("FAST2SMS_URL", sms.DefaultFast2SMSURL),
		},
		notifyTimeout: env.GetDuration("NOTIFY_TIMEOUT", 10*time.Second),
		auth: authConfig{
			basic: basicConfig{
				user: env.GetString("AUTH_BASIC_USER", ""),
				pass: env.GetString("AUTH_BASIC_PASS", ""),
			},
		},
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Infow("no .env file loaded, using process environment", "error", envErr.Error())
	}

	if cfg.payment.razorpay.keyID == "" || cfg.payment.razorpay.keySecret == "" {
		logger.Fatal("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are required")
	}

	// Payments
	gateway := payments.NewRazorpayAdapter(
		cfg.payment.razorpay.keyID,
		cfg.payment.razorpay.keySecret,
		cfg.payment.razorpay.timeout,
	)
	if t := gateway.Timeout(); cfg.payment.razorpay.timeout > 0 && t != cfg.payment.razorpay.timeout {
		logger.Warnw("RAZORPAY_TIMEOUT adjusted to whole seconds", "requested", cfg.payment.razorpay.timeout.String(), "using", t.String())
	}

	receipts, err := payments.NewReceiptGenerator(cfg.payment.receiptSalt)
	if err != nil {
		logger.Fatal(err)
	}

	// Notifications. A channel without credentials stays disabled; sends on it
	// are logged as failures but never block payment verification.
	var mailClient mailer.Client
	smtp, err := mailer.NewSMTPClient(
		cfg.mail.host,
		cfg.mail.port,
		cfg.mail.username,
		cfg.mail.password,
		cfg.mail.fromEmail,
		cfg.notifyTimeout,
	)
	if err != nil {
		logger.Warnw("email notifications disabled", "error", err.Error())
	} else {
		mailClient = smtp
	}

	var smsClient sms.Client
	fast2sms, err := sms.NewFast2SMSAdapter(cfg.sms.apiKey, cfg.sms.url, cfg.notifyTimeout)
	if err != nil {
		logger.Warnw("sms notifications disabled", "error", err.Error())
	} else {
		smsClient = fast2sms
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		orders:   payments.NewOrderService(gateway, receipts),
		verifier: payments.NewSignatureVerifier(cfg.payment.razorpay.keySecret),
		notifier: notifications.NewDispatcher(mailClient, smsClient, logger),
	}

	//Metrics collected http://localhost:3000/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
