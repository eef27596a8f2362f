package history

import (
	"fmt"
	"time"

	"marketlens/internal/catalog"
	"marketlens/internal/domain"
)

var istZone = time.FixedZone("IST", 5*3600+1800)

const istLayout = "02-01-2006 03:04:05 PM IST"

// ISTDisplay renders an epoch-second timestamp in Indian Standard
// Time, 12-hour clock.
func ISTDisplay(ts int64) string {
	return time.Unix(ts, 0).In(istZone).Format(istLayout)
}

// MergeResult pairs the merged rows with the non-fatal warnings
// collected while matching series points to candles.
type MergeResult struct {
	Rows     []domain.MergedRow
	Warnings []string
}

// Merge reconciles indicator series onto the OHLC backbone by exact
// timestamp. Per indicator, duplicate timestamps keep the first-seen
// point. A candle timestamp missing from a present series produces a
// warning and that indicator's fields are simply absent on the row; a
// matched point missing a mapped source field contributes 0. Series
// absent from the map entirely are skipped, their batch failure is
// already recorded upstream. Inputs are never mutated.
func Merge(
	candles []domain.Candle,
	series map[string][]domain.SeriesPoint,
	specs []catalog.IndicatorSpec,
) (*MergeResult, error) {
	if len(candles) == 0 {
		return nil, &domain.DataError{Message: "no OHLC data"}
	}

	type indicatorLookup struct {
		spec catalog.IndicatorSpec
		byTS map[int64]domain.SeriesPoint
	}
	lookups := make([]indicatorLookup, 0, len(specs))
	for _, spec := range specs {
		pts, ok := series[spec.SourceID]
		if !ok {
			continue
		}
		byTS := make(map[int64]domain.SeriesPoint, len(pts))
		for _, pt := range pts {
			if _, seen := byTS[pt.Timestamp]; seen {
				continue
			}
			byTS[pt.Timestamp] = pt
		}
		lookups = append(lookups, indicatorLookup{spec: spec, byTS: byTS})
	}

	result := &MergeResult{Rows: make([]domain.MergedRow, 0, len(candles))}
	for i, c := range candles {
		row := domain.MergedRow{
			Timestamp:   c.Timestamp,
			Open:        c.Open,
			High:        c.High,
			Low:         c.Low,
			Close:       c.Close,
			Volume:      c.Volume,
			Index:       c.Index,
			DatetimeIST: ISTDisplay(c.Timestamp),
		}
		for _, lk := range lookups {
			pt, ok := lk.byTS[c.Timestamp]
			if !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("indicator %s missing for timestamp %d (row %d)", lk.spec.ShortName, c.Timestamp, i))
				continue
			}
			if row.Indicators == nil {
				row.Indicators = make(map[string]float64)
			}
			for _, fm := range lk.spec.OutputFields {
				row.Indicators[fm.OutputName] = pt.Fields[fm.SourceKey]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}
