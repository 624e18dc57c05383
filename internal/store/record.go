package store

import "time"

// Record is one persisted public IP observation. Once committed
// it is immutable; no deletion path is exposed.
type Record struct {
	ID      int64     `json:"id"`
	Time    time.Time `json:"time"`
	Address string    `json:"ip_address"`
}
