// Package ledger holds the hub and outlet stock of the whole retail network.
// Every stock mutation in the process goes through a single Ledger, which owns
// the lock, so validate-then-mutate sequences can never interleave.
package ledger

import (
	"fmt"
	"math"
	"sync"
	"time"
)

type Scope int

const (
	ScopeHub Scope = iota
	ScopeOutlet
)

// Location addresses one stock bucket: the hub, or a single outlet.
type Location struct {
	Scope    Scope
	OutletID string
}

func Hub() Location {
	return Location{Scope: ScopeHub}
}

func Outlet(id string) Location {
	return Location{Scope: ScopeOutlet, OutletID: id}
}

func (l Location) String() string {
	if l.Scope == ScopeHub {
		return "hub"
	}
	return "outlet " + l.OutletID
}

// Entry is one signed quantity change inside a batch.
type Entry struct {
	Location  Location
	ProductID int
	Delta     int
}

// Batch is applied all-or-nothing. Touch names the outlet whose last-activity
// marker moves to At on success; Settle runs the replenishment clock at At
// before validation, under the same lock.
type Batch struct {
	Entries []Entry
	Touch   string
	At      time.Time
	Settle  bool
}

// Seed is the documented starting state of the ledger.
type Seed struct {
	Hub          map[int]int
	Outlets      map[string]map[int]int
	LastActivity map[string]time.Time
}

type Ledger struct {
	mu           sync.RWMutex
	hub          map[int]int
	outlets      map[string]map[int]int
	lastActivity map[string]time.Time
	clock        *ReplenishmentClock
	now          func() time.Time
}

type Option func(*Ledger)

// WithNow sets the time source Get and Adjust settle the hub against. Defaults to time.Now.
func WithNow(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New builds a ledger from a copy of seed. A nil clock disables replenishment.
func New(seed Seed, clock *ReplenishmentClock, opts ...Option) *Ledger {
	l := &Ledger{
		hub:          copyStock(seed.Hub),
		outlets:      make(map[string]map[int]int, len(seed.Outlets)),
		lastActivity: make(map[string]time.Time, len(seed.LastActivity)),
		clock:        clock,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	for id, stock := range seed.Outlets {
		l.outlets[id] = copyStock(stock)
	}
	for id, at := range seed.LastActivity {
		l.lastActivity[id] = at.UTC()
	}
	return l
}

// Settle credits the hub for every whole minute elapsed since the last refill
// and returns the number of minutes credited.
func (l *Ledger) Settle(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settleLocked(now)
}

func (l *Ledger) settleLocked(now time.Time) int {
	if l.clock == nil {
		return 0
	}
	minutes := l.clock.advance(now)
	if minutes == 0 {
		return 0
	}
	credit := l.clock.increment * minutes
	for productID := range l.hub {
		l.hub[productID] += credit
	}
	return minutes
}

// Get returns the quantity held at loc, 0 when nothing was ever recorded.
// Hub reads settle the replenishment clock first.
func (l *Ledger) Get(loc Location, productID int) int {
	if loc.Scope == ScopeHub {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.settleLocked(l.now())
		return l.hub[productID]
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bucket(loc)[productID]
}

// Adjust applies a single signed change and returns the new quantity.
func (l *Ledger) Adjust(loc Location, productID, delta int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := Batch{Entries: []Entry{{Location: loc, ProductID: productID, Delta: delta}}}
	if loc.Scope == ScopeHub {
		b.At, b.Settle = l.now(), true
	}
	if err := l.applyLocked(b); err != nil {
		return l.bucket(loc)[productID], err
	}
	return l.bucket(loc)[productID], nil
}

// Applied holds the stock left after a batch, copied under the batch's lock.
// Outlet is the bucket of the touched outlet, nil when the batch touched none.
type Applied struct {
	Hub    map[int]int
	Outlet map[int]int
}

// ApplyBatch validates every entry against the current state and only then
// mutates. Entries touching the same location and product are summed first,
// so a batch is judged as a whole and never against a partially applied state.
func (l *Ledger) ApplyBatch(b Batch) (Applied, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.applyLocked(b); err != nil {
		return Applied{}, err
	}
	applied := Applied{Hub: copyStock(l.hub)}
	if b.Touch != "" {
		applied.Outlet = copyStock(l.outlets[b.Touch])
	}
	return applied, nil
}

type stockKey struct {
	loc       Location
	productID int
}

func (l *Ledger) applyLocked(b Batch) error {
	if b.Settle {
		l.settleLocked(b.At)
	}
	if b.Touch != "" {
		if _, ok := l.outlets[b.Touch]; !ok {
			return &Error{Kind: KindNotFound, Message: fmt.Sprintf("outlet %s not found", b.Touch), OutletID: b.Touch}
		}
	}

	net := make(map[stockKey]int, len(b.Entries))
	order := make([]stockKey, 0, len(b.Entries))
	for _, e := range b.Entries {
		if e.Location.Scope == ScopeOutlet {
			if _, ok := l.outlets[e.Location.OutletID]; !ok {
				return &Error{Kind: KindNotFound, Message: fmt.Sprintf("outlet %s not found", e.Location.OutletID), OutletID: e.Location.OutletID}
			}
		}
		k := stockKey{loc: e.Location, productID: e.ProductID}
		if _, seen := net[k]; !seen {
			order = append(order, k)
		}
		total, ok := addInt(net[k], e.Delta)
		if !ok {
			return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf("quantity overflow at %s for product %d", e.Location, e.ProductID), OutletID: e.Location.OutletID, ProductID: e.ProductID}
		}
		net[k] = total
	}

	for _, k := range order {
		have := l.bucket(k.loc)[k.productID]
		after, ok := addInt(have, net[k])
		if !ok {
			return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf("quantity overflow at %s for product %d", k.loc, k.productID), OutletID: k.loc.OutletID, ProductID: k.productID}
		}
		if after < 0 {
			return &Error{
				Kind:      KindInsufficientStock,
				Message:   fmt.Sprintf("insufficient stock at %s for product %d: have %d, need %d", k.loc, k.productID, have, -net[k]),
				OutletID:  k.loc.OutletID,
				ProductID: k.productID,
			}
		}
	}

	for _, k := range order {
		if k.loc.Scope == ScopeHub {
			l.hub[k.productID] += net[k]
		} else {
			l.outlets[k.loc.OutletID][k.productID] += net[k]
		}
	}
	if b.Touch != "" {
		l.lastActivity[b.Touch] = b.At.UTC()
	}
	return nil
}

// bucket returns the live map for loc; unknown outlets yield a nil map, which reads as zero.
func (l *Ledger) bucket(loc Location) map[int]int {
	if loc.Scope == ScopeHub {
		return l.hub
	}
	return l.outlets[loc.OutletID]
}

// Snapshot is a deep copy of the ledger taken under one lock acquisition.
type Snapshot struct {
	Hub          map[int]int
	Outlets      map[string]map[int]int
	LastActivity map[string]time.Time
	LastRefill   time.Time
}

func (s Snapshot) HubTotal() int {
	return sum(s.Hub)
}

func (s Snapshot) OutletTotal(outletID string) int {
	return sum(s.Outlets[outletID])
}

func (s Snapshot) OutletsTotal() int {
	total := 0
	for _, stock := range s.Outlets {
		total += sum(stock)
	}
	return total
}

func (l *Ledger) Snapshot() (Snapshot, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

// SettleAndSnapshot settles the replenishment clock and copies the state in one critical section.
func (l *Ledger) SettleAndSnapshot(now time.Time) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleLocked(now)
	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() (Snapshot, error) {
	snap := Snapshot{
		Hub:          copyStock(l.hub),
		Outlets:      make(map[string]map[int]int, len(l.outlets)),
		LastActivity: make(map[string]time.Time, len(l.lastActivity)),
	}
	if l.clock != nil {
		snap.LastRefill = l.clock.lastRefill
	}
	for productID, qty := range l.hub {
		if qty < 0 {
			return Snapshot{}, &Error{Kind: KindInternalInconsistency, Message: fmt.Sprintf("hub holds negative stock %d for product %d", qty, productID), ProductID: productID}
		}
	}
	for id, stock := range l.outlets {
		for productID, qty := range stock {
			if qty < 0 {
				return Snapshot{}, &Error{Kind: KindInternalInconsistency, Message: fmt.Sprintf("outlet %s holds negative stock %d for product %d", id, qty, productID), OutletID: id, ProductID: productID}
			}
		}
		snap.Outlets[id] = copyStock(stock)
	}
	for id, at := range l.lastActivity {
		snap.LastActivity[id] = at
	}
	return snap, nil
}

// addInt reports false instead of wrapping around.
func addInt(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

func copyStock(src map[int]int) map[int]int {
	dst := make(map[int]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func sum(stock map[int]int) int {
	total := 0
	for _, qty := range stock {
		total += qty
	}
	return total
}
