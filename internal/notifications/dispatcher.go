package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"vanutsav/internal/mailer"
	"vanutsav/internal/sms"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	ErrEmailDisabled = errors.New("email channel is not configured")
	ErrSMSDisabled   = errors.New("sms channel is not configured")
)

// Dispatcher sends the post-payment confirmations. Either client may be nil,
// in which case that channel reports ErrEmailDisabled / ErrSMSDisabled.
type Dispatcher struct {
	mailer mailer.Client
	sms    sms.Client
	logger *zap.SugaredLogger
}

func NewDispatcher(m mailer.Client, s sms.Client, logger *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{mailer: m, sms: s, logger: logger}
}

func (d *Dispatcher) SendConfirmationEmail(ctx context.Context, b Booking) error {
	if d.mailer == nil {
		return ErrEmailDisabled
	}

	// smtp has no context; the dialer timeout bounds the send itself.
	done := make(chan error, 1)
	go func() {
		done <- d.mailer.Send(mailer.BookingConfirmationTemplate, b.Email, b.View())
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("send confirmation email: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send confirmation email: %w", err)
		}
		return nil
	}
}

func (d *Dispatcher) SendConfirmationSMS(ctx context.Context, mobile string, b Booking) error {
	if d.sms == nil {
		return ErrSMSDisabled
	}
	if err := d.sms.Send(ctx, mobile, ConfirmationSMS(b)); err != nil {
		return fmt.Errorf("send confirmation sms: %w", err)
	}
	return nil
}

// BookingConfirmed fires the email and SMS concurrently, skipping whichever
// contact detail is missing, and waits for both. One channel failing does not
// stop the other; the returned error combines whatever failed.
func (d *Dispatcher) BookingConfirmed(ctx context.Context, b Booking) error {
	var (
		mu   sync.Mutex
		errs error
		wg   sync.WaitGroup
	)

	record := func(channel string, err error) {
		if err != nil {
			d.logger.Warnw("booking notification failed", "channel", channel, "package", b.PackageName, "error", err.Error())
		} else {
			d.logger.Infow("booking notification sent", "channel", channel, "package", b.PackageName)
		}
		mu.Lock()
		errs = multierr.Append(errs, err)
		mu.Unlock()
	}

	if b.Email != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record("email", d.SendConfirmationEmail(ctx, b))
		}()
	}

	if b.Mobile != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record("sms", d.SendConfirmationSMS(ctx, b.Mobile, b))
		}()
	}

	wg.Wait()
	return errs
}
