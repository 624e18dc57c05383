package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Tracker struct {
	// Period is the duration between two public IP checks.
	Period time.Duration
}

func (t *Tracker) read(r *reader.Reader) (err error) {
	t.Period, err = r.Duration("IPGET_PERIOD")
	return err
}

func (t *Tracker) setDefaults() {
	const defaultPeriod = 10 * time.Minute
	t.Period = gosettings.DefaultComparable(t.Period, defaultPeriod)
}

var ErrPeriodTooSmall = errors.New("period is too small")

func (t Tracker) Validate() (err error) {
	const minPeriod = 10 * time.Second
	if t.Period < minPeriod {
		return fmt.Errorf("%w: %s must be at least %s",
			ErrPeriodTooSmall, t.Period, minPeriod)
	}
	return nil
}

func (t Tracker) String() string {
	return t.toLinesNode().String()
}

func (t Tracker) toLinesNode() *gotree.Node {
	node := gotree.New("Tracker")
	node.Appendf("Period: %s", t.Period)
	return node
}
