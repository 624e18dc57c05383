package tracker

import (
	"context"
	"net/netip"
	"time"

	"github.com/ipget/ipget/internal/healthchecksio"
	"github.com/ipget/ipget/internal/store"
)

type Store interface {
	Write(ctx context.Context, t time.Time, address string) (id int64, err error)
	ReadLatest(ctx context.Context) (record *store.Record, err error)
}

type PublicIPFetcher interface {
	IP(ctx context.Context) (publicIP netip.Addr, err error)
}

type Notifier interface {
	Notify(message string)
}

type HealthchecksIOClient interface {
	Ping(ctx context.Context, state healthchecksio.State) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
