package metrics

import (
	"math"
	"sort"

	"tradevault/internal/model"
)

// Consistency 稳定性指标。连胜连败按开仓时间升序统计，
// pnl==0的交易同时打断两种连串；标准差取总体标准差；
// hit_rate当前和win_rate同口径，等评分器上线后改成按计划命中统计
func Consistency(samples []Sample) model.ConsistencyMetrics {
	var m model.ConsistencyMetrics
	if len(samples) == 0 {
		return m
	}

	ordered := make([]Sample, len(samples))
	copy(ordered, samples)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].EntryDate.Before(ordered[j].EntryDate)
	})

	var winStreak, lossStreak int
	var wins int
	for _, s := range ordered {
		switch {
		case s.Pnl > 0:
			wins++
			winStreak++
			lossStreak = 0
		case s.Pnl < 0:
			lossStreak++
			winStreak = 0
		default:
			winStreak = 0
			lossStreak = 0
		}
		if winStreak > m.MaxWinStreak {
			m.MaxWinStreak = winStreak
		}
		if lossStreak > m.MaxLossStreak {
			m.MaxLossStreak = lossStreak
		}
	}
	m.HitRate = float64(wins) / float64(len(samples))

	var sum float64
	for _, s := range samples {
		sum += s.Pnl
	}
	mean := sum / float64(len(samples))
	var variance float64
	for _, s := range samples {
		d := s.Pnl - mean
		variance += d * d
	}
	m.PnlStdDev = math.Sqrt(variance / float64(len(samples)))
	return m
}
