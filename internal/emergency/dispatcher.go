package emergency

import (
	"context"
	"errors"
	"fmt"

	"porter-saathi/pkg/log"
)

// Dispatcher fans an alert out to every configured sink. Every sink is tried
// even when an earlier one fails; the failures are joined.
type Dispatcher struct {
	sinks []namedSink
	l     log.Logger
}

type namedSink struct {
	name string
	n    Notifier
}

var _ Notifier = (*Dispatcher)(nil)

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher(l log.Logger) *Dispatcher {
	return &Dispatcher{l: l}
}

// Add registers a sink under name.
func (d *Dispatcher) Add(name string, n Notifier) *Dispatcher {
	d.sinks = append(d.sinks, namedSink{name: name, n: n})
	return d
}

// Len returns the number of registered sinks.
func (d *Dispatcher) Len() int {
	return len(d.sinks)
}

func (d *Dispatcher) Notify(ctx context.Context, alert Alert) error {
	var errs []error
	for _, s := range d.sinks {
		if err := s.n.Notify(ctx, alert); err != nil {
			d.l.Warnf(ctx, "emergency.Dispatcher: sink %s failed for alert %s: %v", s.name, alert.ID, err)
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}
