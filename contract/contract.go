//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import "time"

// Clock abstracts time.Now() so "today" can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// ZoneProvider resolves the default zone and named zones.
type ZoneProvider interface {
	// Default is the zone used for "today" and for attaching offsets to naive date-times.
	Default() *time.Location
	// Load resolves an IANA name or a fixed-offset id such as "Z" or "+02:00".
	Load(name string) (*time.Location, error)
}
