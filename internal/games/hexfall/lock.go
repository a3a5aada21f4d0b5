package hexfall

import "time"

// DefaultLockDelay is the grace period between a piece touching down
// and locking in place.
const DefaultLockDelay = 500 * time.Millisecond

// LockState is the per-piece lock-delay state machine: a piece is
// either free or locking since some instant. The orchestrating caller
// supplies the clock; the state itself is a plain value.
type LockState struct {
	Locking bool
	Since   time.Duration
}

// Grounded records that the piece cannot fall. The timer starts only
// on the free-to-locking transition; subsequent grounded ticks leave
// the running timer alone so the delay can actually expire.
func (s LockState) Grounded(now time.Duration) LockState {
	if s.Locking {
		return s
	}
	return LockState{Locking: true, Since: now}
}

// Released returns to the free state; called whenever the piece can
// fall again.
func (s LockState) Released() LockState {
	return LockState{}
}

// Restarted restarts the timer at the given instant. Called after a
// successful player move or rotation that leaves the piece grounded,
// granting fresh tuck time.
func (s LockState) Restarted(now time.Duration) LockState {
	return LockState{Locking: true, Since: now}
}

// Expired reports whether the locking state has persisted for at least
// the given delay.
func (s LockState) Expired(now, delay time.Duration) bool {
	return s.Locking && now-s.Since >= delay
}
