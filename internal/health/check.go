package health

import (
	"context"
	"time"

	"github.com/ipget/ipget/internal/store"
)

type LatestReader interface {
	ReadLatest(ctx context.Context) (record *store.Record, err error)
}

// MakeIsHealthy creates a check reporting healthy as long as
// the database answers the latest-observation query.
func MakeIsHealthy(reader LatestReader) func() error {
	return func() error {
		const timeout = 5 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err := reader.ReadLatest(ctx)
		return err
	}
}
