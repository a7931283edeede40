package notify

import (
	"context"

	"go.uber.org/multierr"
)

// Notifier delivers one alert message. A nil error means the message was
// confirmed accepted by the channel.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type Multi []Notifier

func (m Multi) Send(ctx context.Context, text string) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Send(ctx, text))
	}
	return errs
}
