package clock

import (
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kaiklok/kairos/internal/bridge"
	"github.com/kaiklok/kairos/internal/pulse"
)

// ErrNotSeeded is returned by Now before any seed or provider override is
// installed. Reading an unseeded clock is a programmer error; failing loudly
// beats silently reporting the Genesis pulse.
var ErrNotSeeded = errors.New("NOT_SEEDED: kairos clock read before seeding")

// MonotonicFunc reads an always-increasing nanosecond counter. The zero
// point is arbitrary; only deltas are meaningful.
type MonotonicFunc func() int64

// ProviderFunc fully overrides Now, e.g. with an externally synchronized
// clock.
type ProviderFunc func() (*big.Int, error)

// Kairos is a clock context created by New. The mutex makes the seed/read
// pair safe for multi-goroutine hosts; within one goroutine the behavior is
// exactly the single-context model.
type Kairos struct {
	mu        sync.Mutex
	session   string
	monotonic MonotonicFunc
	provider  ProviderFunc

	seeded    bool
	seedMicro *big.Int
	seedMono  int64
}

// Option configures a Kairos clock at construction.
type Option func(*Kairos)

// WithMonotonic replaces the host monotonic source. Tests inject a
// deterministic counter here.
func WithMonotonic(fn MonotonicFunc) Option {
	return func(k *Kairos) { k.monotonic = fn }
}

var processStart = time.Now()

// New creates an unseeded clock. The default monotonic source is the
// process-relative reading behind time.Since, which the runtime guarantees
// never moves backward.
func New(opts ...Option) *Kairos {
	k := &Kairos{
		session:   uuid.Must(uuid.NewV7()).String(),
		monotonic: func() int64 { return int64(time.Since(processStart)) },
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Session returns the clock's session token, stamped on assembled responses
// so consumers can tell readings from independent clock instances apart.
func (k *Kairos) Session() string { return k.session }

// SeedFromMicroPulses installs the seed coordinate, pairing it with a
// monotonic reading taken in the same critical section. Re-seeding replaces
// the pair atomically; no history is kept.
func (k *Kairos) SeedFromMicroPulses(mu *big.Int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.seedMicro = new(big.Int).Set(mu)
	k.seedMono = k.monotonic()
	k.seeded = true
}

// SeedFromUTC seeds from any instant representation the converter accepts.
// This is the only place the wall clock may enter a Kairos clock, and it
// enters exactly once.
func (k *Kairos) SeedFromUTC(instant any) error {
	mu, err := pulse.MicroPulsesSinceGenesis(instant)
	if err != nil {
		return err
	}
	k.SeedFromMicroPulses(mu)
	return nil
}

// SetProvider installs a full override for Now, or removes it with nil.
func (k *Kairos) SetProvider(fn ProviderFunc) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.provider = fn
}

// Now returns the current micropulse coordinate: the seed plus the
// bridge-converted monotonic delta. With a provider installed, the provider
// answers instead. Fails with ErrNotSeeded before the first seed.
func (k *Kairos) Now() (*big.Int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.provider != nil {
		return k.provider()
	}
	if !k.seeded {
		return nil, ErrNotSeeded
	}

	deltaNs := k.monotonic() - k.seedMono
	deltaMicro, err := bridge.MicroPulsesPerNs.Apply(big.NewInt(deltaNs))
	if err != nil {
		return nil, err
	}
	return deltaMicro.Add(deltaMicro, k.seedMicro), nil
}
