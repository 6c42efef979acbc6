package repo

import (
	"context"
	"time"

	"github.com/tbourn/go-wellness-backend/internal/store"
)

// DayCount is the number of journal entries written on Date (YYYY-MM-DD).
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ChallengeStats returns how many of a user's daily challenges were completed
// out of all challenges ever assigned.
func ChallengeStats(ctx context.Context, s *store.Store, email string) (completed, total int) {
	list := Challenges(email).List(ctx, s)
	for _, c := range list {
		if c.Completed {
			completed++
		}
	}
	return completed, len(list)
}

// JournalActivity buckets a user's journal entries per calendar day in loc.
// Entries are stored newest first, so the first days buckets are the most
// recent ones; the result is returned oldest first. Entries whose id is not a
// timestamp are skipped.
func JournalActivity(ctx context.Context, s *store.Store, email string, days int, loc *time.Location) []DayCount {
	if loc == nil {
		loc = time.Local
	}
	out := []DayCount{}
	for _, e := range JournalEntries(email).List(ctx, s) {
		t, err := time.Parse(time.RFC3339Nano, e.ID)
		if err != nil {
			continue
		}
		day := t.In(loc).Format(time.DateOnly)
		found := false
		for i := range out {
			if out[i].Date == day {
				out[i].Count++
				found = true
				break
			}
		}
		if !found {
			out = append(out, DayCount{Date: day, Count: 1})
		}
	}
	if days > 0 && len(out) > days {
		out = out[:days]
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
