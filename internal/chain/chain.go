// Package chain groups raw option rows into strike ladders, selects
// ITM/OTM windows around the spot price and computes aggregate Greek
// exposure. All functions are pure computations over their inputs.
package chain

import (
	"fmt"
	"math"
	"sort"
	"time"

	"marketlens/internal/domain"
)

// Group buckets raw option rows by expiry, then strike. Intrinsic and
// time value are computed here so every leg carries them from the
// moment the ladder exists. Rows with an unknown option type are
// dropped.
func Group(rows []domain.RawOptionRow, spot float64) map[int]map[float64]*domain.StrikeGroup {
	byExpiry := make(map[int]map[float64]*domain.StrikeGroup)
	for _, row := range rows {
		if row.Type != domain.OptionCall && row.Type != domain.OptionPut {
			continue
		}
		strikes, ok := byExpiry[row.Expiry]
		if !ok {
			strikes = make(map[float64]*domain.StrikeGroup)
			byExpiry[row.Expiry] = strikes
		}
		group, ok := strikes[row.Strike]
		if !ok {
			group = &domain.StrikeGroup{
				Strike:           row.Strike,
				Expiry:           row.Expiry,
				DistanceFromSpot: row.Strike - spot,
			}
			strikes[row.Strike] = group
		}
		leg := buildLeg(row, spot)
		if row.Type == domain.OptionCall {
			group.Call = leg
		} else {
			group.Put = leg
		}
	}
	return byExpiry
}

func buildLeg(row domain.RawOptionRow, spot float64) *domain.OptionLeg {
	var intrinsic float64
	if row.Type == domain.OptionCall {
		intrinsic = math.Max(0, spot-row.Strike)
	} else {
		intrinsic = math.Max(0, row.Strike-spot)
	}
	return &domain.OptionLeg{
		Symbol:         row.Symbol,
		Expiry:         row.Expiry,
		Bid:            row.Bid,
		Ask:            row.Ask,
		TheoPrice:      row.TheoPrice,
		Delta:          row.Delta,
		Gamma:          row.Gamma,
		Theta:          row.Theta,
		Vega:           row.Vega,
		Rho:            row.Rho,
		IV:             row.IV,
		BidIV:          row.BidIV,
		AskIV:          row.AskIV,
		IntrinsicValue: intrinsic,
		TimeValue:      row.TheoPrice - intrinsic,
	}
}

// SelectWindow picks the strikes closest to spot on each side: the
// last itmCount strikes below the first strike at or above spot, and
// the first otmCount strikes from that boundary on. A side with fewer
// strikes than requested yields everything available plus a warning.
func SelectWindow(strikes map[float64]*domain.StrikeGroup, spot float64, itmCount, otmCount int) ([]*domain.StrikeGroup, []string) {
	ladder := make([]*domain.StrikeGroup, 0, len(strikes))
	for _, g := range strikes {
		ladder = append(ladder, g)
	}
	sort.Slice(ladder, func(i, j int) bool { return ladder[i].Strike < ladder[j].Strike })

	boundary := len(ladder)
	for i, g := range ladder {
		if g.Strike >= spot {
			boundary = i
			break
		}
	}
	itm := ladder[:boundary]
	otm := ladder[boundary:]

	var warnings []string
	if len(itm) > itmCount {
		itm = itm[len(itm)-itmCount:]
	} else if len(itm) < itmCount && len(ladder) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"expiry %d: only %d of %d requested ITM strikes available", ladder[0].Expiry, len(itm), itmCount))
	}
	if len(otm) > otmCount {
		otm = otm[:otmCount]
	} else if len(otm) < otmCount && len(ladder) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"expiry %d: only %d of %d requested OTM strikes available", ladder[0].Expiry, len(otm), otmCount))
	}

	selected := make([]*domain.StrikeGroup, 0, len(itm)+len(otm))
	selected = append(selected, itm...)
	selected = append(selected, otm...)
	return selected, warnings
}

// Flatten turns selected strike groups into per-leg rows tagged with
// option side, strike and distance from spot. Calls precede puts
// within a strike, strikes keep their ascending order.
func Flatten(groups []*domain.StrikeGroup) []domain.ChainRow {
	rows := make([]domain.ChainRow, 0, 2*len(groups))
	for _, g := range groups {
		if g.Call != nil {
			rows = append(rows, domain.ChainRow{
				OptionLeg:        *g.Call,
				Option:           domain.OptionCall,
				StrikePrice:      g.Strike,
				DistanceFromSpot: g.DistanceFromSpot,
			})
		}
		if g.Put != nil {
			rows = append(rows, domain.ChainRow{
				OptionLeg:        *g.Put,
				Option:           domain.OptionPut,
				StrikePrice:      g.Strike,
				DistanceFromSpot: g.DistanceFromSpot,
			})
		}
	}
	return rows
}

// Analytics aggregates Greek exposure over flattened rows. Net delta
// is the sum of the call and put totals; the ATM strike minimizes the
// absolute distance to spot over distinct strikes.
func Analytics(rows []domain.ChainRow, spot float64) *domain.ChainAnalytics {
	a := &domain.ChainAnalytics{}
	seen := make(map[float64]bool)
	bestDist := math.Inf(1)
	for _, row := range rows {
		switch row.Option {
		case domain.OptionCall:
			a.TotalCallDelta += row.Delta
		case domain.OptionPut:
			a.TotalPutDelta += row.Delta
		}
		if !seen[row.StrikePrice] {
			seen[row.StrikePrice] = true
			a.TotalStrikes++
		}
		if d := math.Abs(row.StrikePrice - spot); d < bestDist {
			bestDist = d
			a.ATMStrike = row.StrikePrice
		}
	}
	a.NetDelta = a.TotalCallDelta + a.TotalPutDelta
	return a
}

// AvailableExpiries lists the expiries present in a grouped chain in
// ascending order.
func AvailableExpiries(byExpiry map[int]map[float64]*domain.StrikeGroup) []int {
	expiries := make([]int, 0, len(byExpiry))
	for exp := range byExpiry {
		expiries = append(expiries, exp)
	}
	sort.Ints(expiries)
	return expiries
}

// NearestExpiry returns the earliest expiry at or after today. When
// every expiry is already past it falls back to the latest one, so a
// stale chain still resolves deterministically.
func NearestExpiry(expiries []int, today int) (int, bool) {
	if len(expiries) == 0 {
		return 0, false
	}
	sorted := append([]int(nil), expiries...)
	sort.Ints(sorted)
	for _, exp := range sorted {
		if exp >= today {
			return exp, true
		}
	}
	return sorted[len(sorted)-1], true
}

// DateInt renders a time as a YYYYMMDD integer.
func DateInt(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
