package sms

import "context"

type Client interface {
	Send(ctx context.Context, mobile, message string) error
}
