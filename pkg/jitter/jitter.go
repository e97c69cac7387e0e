// Package jitter рассчитывает задержки повторных попыток со случайной добавкой,
// чтобы клиенты не повторяли запросы синхронно.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter — доля случайной добавки к задержке (50%)
const DefaultJitter = 0.5

// Duration возвращает d плюс случайную добавку из [0, d*factor).
func Duration(d time.Duration, factor float64) time.Duration {
	return withRand(d, factor, rand.Float64)
}

// ExponentialBackoff удваивает base для каждой попытки (attempt с нуля), ограничивает результат max
// и добавляет джиттер с долей factor.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	return Duration(capped(base, max, attempt), factor)
}

func capped(base, max time.Duration, attempt int) time.Duration {
	backoff := base
	for i := 0; i < attempt && backoff < max; i++ {
		backoff *= 2
	}
	if backoff > max {
		backoff = max
	}

	return backoff
}

func withRand(d time.Duration, factor float64, rnd func() float64) time.Duration {
	if factor <= 0 || d <= 0 {
		return d
	}

	return d + time.Duration(rnd()*factor*float64(d))
}
