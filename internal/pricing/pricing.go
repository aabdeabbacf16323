// Package pricing derives the monetary snapshot of a reservation from its
// daily rate, date range and selected add-ons. All arithmetic is integer
// cents so repeated recomputation never drifts.
package pricing

import (
	"time"

	"rentman-backend/internal/domain"
)

// Per-day add-on fees and the flat tax rate. Rates are fixed constants;
// a configurable pricing engine is out of scope.
const (
	InsuranceDailyCents        int64 = 1500
	GPSDailyCents              int64 = 500
	ChildSeatDailyCents        int64 = 800
	AdditionalDriverDailyCents int64 = 1000

	// 8.5% expressed as a rational so tax stays exact in cents.
	taxRateNumerator   int64 = 85
	taxRateDenominator int64 = 1000
)

// Options are the add-on selections that drive per-day fees.
type Options struct {
	Insurance        bool
	GPS              bool
	ChildSeat        bool
	AdditionalDriver bool
}

// Quote is the full pricing breakdown for a reservation.
type Quote struct {
	TotalDays       int32
	SubtotalCents   int64
	InsuranceCents  int64
	AdditionalCents int64
	TaxCents        int64
	DiscountCents   int64
	TotalCents      int64
}

// Tax returns the tax on a taxable base, rounded half up to the cent.
func Tax(baseCents int64) int64 {
	return (baseCents*taxRateNumerator + taxRateDenominator/2) / taxRateDenominator
}

// Compute prices a rental of the inclusive calendar range [start, end].
//
// Insurance is tracked in its own field and excluded from the taxable
// base: tax applies to subtotal plus the other add-on fees only. The
// legacy system disagreed with itself here (its entity recompute excluded
// insurance while its creation path taxed it); this module standardizes on
// the entity convention.
func Compute(dailyRateCents int64, start, end time.Time, opts Options, discountCents int64) Quote {
	days := domain.DaysBetween(start, end)

	q := Quote{
		TotalDays:     days,
		SubtotalCents: dailyRateCents * int64(days),
		DiscountCents: discountCents,
	}

	if opts.Insurance {
		q.InsuranceCents = InsuranceDailyCents * int64(days)
	}
	if opts.GPS {
		q.AdditionalCents += GPSDailyCents * int64(days)
	}
	if opts.ChildSeat {
		q.AdditionalCents += ChildSeatDailyCents * int64(days)
	}
	if opts.AdditionalDriver {
		q.AdditionalCents += AdditionalDriverDailyCents * int64(days)
	}

	q.TaxCents = Tax(q.SubtotalCents + q.AdditionalCents)
	q.TotalCents = q.SubtotalCents + q.TaxCents + q.InsuranceCents + q.AdditionalCents - q.DiscountCents
	return q
}

// Apply copies a quote onto a reservation's pricing snapshot.
func Apply(r *domain.Reservation, q Quote) {
	r.TotalDays = q.TotalDays
	r.SubtotalCents = q.SubtotalCents
	r.InsuranceCents = q.InsuranceCents
	r.AdditionalCents = q.AdditionalCents
	r.TaxCents = q.TaxCents
	r.DiscountCents = q.DiscountCents
	r.TotalCents = q.TotalCents
}
