package holiday

import (
	"context"
	"time"
)

type PublicHolidayRepository interface {
	// ListPublic returns holidays without resource scope overlapping [from, to], ordered by date_from.
	ListPublic(ctx context.Context, from, to time.Time) ([]PublicHoliday, error)
}
