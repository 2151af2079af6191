// Package otp models the resend cooldown of a one-time-code challenge as a
// pure function of its start time, so any clock (wall or fake) can drive it.
package otp

import (
	"context"
	"time"
)

// Cooldown is how long resend stays disabled after a code is sent
const Cooldown = 30 * time.Second

// SecondsRemaining returns whole seconds left on the cooldown, rounded up
// and never negative.
func SecondsRemaining(startedAt, now time.Time, cooldown time.Duration) int {
	if startedAt.IsZero() {
		return 0
	}
	left := startedAt.Add(cooldown).Sub(now)
	if left <= 0 {
		return 0
	}
	secs := left / time.Second
	if left%time.Second != 0 {
		secs++
	}
	return int(secs)
}

// CanResend reports whether the cooldown has elapsed
func CanResend(startedAt, now time.Time, cooldown time.Duration) bool {
	return SecondsRemaining(startedAt, now, cooldown) == 0
}

// Countdown emits the remaining seconds once per tick until they reach 0,
// remaining returns false, or ctx is done. remaining is sampled, never
// decremented, so concurrent countdowns cannot drift from each other.
func Countdown(ctx context.Context, tick time.Duration, remaining func() (int, bool)) <-chan int {
	out := make(chan int, 1)
	go func() {
		defer close(out)

		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		for {
			secs, ok := remaining()
			if !ok {
				return
			}
			select {
			case out <- secs:
			case <-ctx.Done():
				return
			}
			if secs == 0 {
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
