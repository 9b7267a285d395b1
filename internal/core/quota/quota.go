// Package quota models recording time as an ordered list of named pools.
// Draws are all-or-nothing and always take from the earliest pool first
package quota

import "fmt"

// NoPool is reported by Next when every pool is empty
const NoPool = "None"

// Pool is one named balance in seconds
type Pool struct {
	Name    string `json:"poolName"`
	Seconds int    `json:"available"`
}

// Balance is the draw order. The zero value is an empty balance
type Balance []Pool

// Total sums every pool, ignoring negative entries
func (b Balance) Total() int {
	n := 0
	for _, p := range b {
		if p.Seconds > 0 {
			n += p.Seconds
		}
	}
	return n
}

// Deduct takes seconds from the pools in order. When the total cannot cover
// the request it returns the receiver unchanged and false. The receiver is never mutated
func (b Balance) Deduct(seconds int) (Balance, bool) {
	if seconds < 0 || seconds > b.Total() {
		return b, false
	}
	out := make(Balance, len(b))
	copy(out, b)
	left := seconds
	for i := range out {
		if left == 0 {
			break
		}
		if out[i].Seconds <= 0 {
			continue
		}
		take := min(out[i].Seconds, left)
		out[i].Seconds -= take
		left -= take
	}
	return out, true
}

// Next is the pool the next draw would come from
func (b Balance) Next() Pool {
	for _, p := range b {
		if p.Seconds > 0 {
			return p
		}
	}
	return Pool{Name: NoPool}
}

// Seconds returns the balance of the named pool, 0 when absent
func (b Balance) Seconds(name string) int {
	for _, p := range b {
		if p.Name == name {
			return p.Seconds
		}
	}
	return 0
}

// FormatSeconds renders a duration as "45s", "2m" or "1m 5s"
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	m, s := total/60, total%60
	switch {
	case m == 0:
		return fmt.Sprintf("%ds", s)
	case s == 0:
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}
