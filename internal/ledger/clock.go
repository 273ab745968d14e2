package ledger

import "time"

// timeNow is swapped out in tests so date validation against "today" is
// deterministic.
var timeNow = time.Now

func today() time.Time {
	return truncateToDay(timeNow())
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(start, end time.Time) int {
	return int(truncateToDay(end).Sub(truncateToDay(start)).Hours() / 24)
}
