package ledger

import "time"

// DefaultRefillIncrement is how many units every hub product gains per elapsed whole minute.
const DefaultRefillIncrement = 50

// ReplenishmentClock credits the hub lazily: nothing runs in the background, the
// ledger asks the clock how many whole minutes have passed whenever it is settled.
// The clock is not safe for concurrent use on its own; the Ledger guards it.
type ReplenishmentClock struct {
	lastRefill time.Time
	increment  int
}

func NewReplenishmentClock(lastRefill time.Time, increment int) *ReplenishmentClock {
	return &ReplenishmentClock{
		lastRefill: lastRefill.UTC(),
		increment:  increment,
	}
}

// advance returns the number of whole minutes elapsed since the last refill and
// moves lastRefill forward by exactly that many minutes, so any sub-minute
// remainder carries over to the next settlement.
func (c *ReplenishmentClock) advance(now time.Time) int {
	minutes := int(now.Sub(c.lastRefill) / time.Minute)
	if minutes <= 0 {
		return 0
	}
	c.lastRefill = c.lastRefill.Add(time.Duration(minutes) * time.Minute)
	return minutes
}
