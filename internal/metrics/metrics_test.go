package metrics

import (
	"math"
	"testing"
	"time"

	"tradevault/internal/consts"
	"tradevault/internal/model/entity"
)

func pnlSamples(pnls ...float64) []Sample {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	samples := make([]Sample, 0, len(pnls))
	for i, p := range pnls {
		samples = append(samples, Sample{Pnl: p, EntryDate: base.Add(time.Duration(i) * time.Hour)})
	}
	return samples
}

func almostEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCoreMetrics(t *testing.T) {
	m := Core(pnlSamples(100, -50, 200, -50))
	if m.TotalTrades != 4 {
		t.Fatalf("total trades: %d", m.TotalTrades)
	}
	if !almostEq(m.WinRate, 0.5) {
		t.Fatalf("win rate: %v", m.WinRate)
	}
	if !almostEq(m.AvgWin, 150) || !almostEq(m.AvgLoss, 50) {
		t.Fatalf("avg win/loss: %v/%v", m.AvgWin, m.AvgLoss)
	}
	if !almostEq(m.AvgRRR, 3) {
		t.Fatalf("avg rrr: %v", m.AvgRRR)
	}
	if m.ProfitFactor == nil || !almostEq(*m.ProfitFactor, 3) {
		t.Fatalf("profit factor: %v", m.ProfitFactor)
	}
	if !almostEq(m.TotalPnl, 200) || !almostEq(m.AvgPnl, 50) {
		t.Fatalf("total/avg pnl: %v/%v", m.TotalPnl, m.AvgPnl)
	}
	// expectancy = 0.5*150 - 0.5*50
	if !almostEq(m.Expectancy, 50) {
		t.Fatalf("expectancy: %v", m.Expectancy)
	}
}

func TestCoreMetricsNoLosingTrades(t *testing.T) {
	m := Core(pnlSamples(10, 20))
	if m.ProfitFactor != nil {
		t.Fatalf("profit factor must be null without losses, got %v", *m.ProfitFactor)
	}
	if m.AvgRRR != 0 || m.AvgLoss != 0 {
		t.Fatalf("loss-side metrics must stay zero: %+v", m)
	}
}

func TestCoreMetricsEmpty(t *testing.T) {
	m := Core(nil)
	if m.TotalTrades != 0 || m.WinRate != 0 || m.TotalPnl != 0 || m.ProfitFactor != nil {
		t.Fatalf("empty input must yield neutral zeros: %+v", m)
	}
}

func TestConsistencyStreaks(t *testing.T) {
	m := Consistency(pnlSamples(10, 10, -5, 10, 10, 10, -5))
	if m.MaxWinStreak != 3 {
		t.Fatalf("max win streak: %d", m.MaxWinStreak)
	}
	if m.MaxLossStreak != 1 {
		t.Fatalf("max loss streak: %d", m.MaxLossStreak)
	}
}

func TestConsistencyZeroPnlBreaksStreaks(t *testing.T) {
	m := Consistency(pnlSamples(10, 10, 0, 10))
	if m.MaxWinStreak != 2 {
		t.Fatalf("zero pnl must break the streak, got %d", m.MaxWinStreak)
	}
	if m.MaxLossStreak != 0 {
		t.Fatalf("no losses here: %d", m.MaxLossStreak)
	}
}

func TestConsistencyStreaksFollowEntryDate(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	// 乱序喂入：按时间排好后是 +,+,+,-
	samples := []Sample{
		{Pnl: -5, EntryDate: base.Add(3 * time.Hour)},
		{Pnl: 10, EntryDate: base},
		{Pnl: 10, EntryDate: base.Add(2 * time.Hour)},
		{Pnl: 10, EntryDate: base.Add(1 * time.Hour)},
	}
	m := Consistency(samples)
	if m.MaxWinStreak != 3 || m.MaxLossStreak != 1 {
		t.Fatalf("streaks must follow entry-date order: %+v", m)
	}
}

func TestConsistencyStdDev(t *testing.T) {
	// 总体标准差：[2,4,4,4,5,5,7,9] -> 2
	m := Consistency(pnlSamples(2, 4, 4, 4, 5, 5, 7, 9))
	if !almostEq(m.PnlStdDev, 2) {
		t.Fatalf("population std dev: %v", m.PnlStdDev)
	}
}

func TestConsistencyHitRate(t *testing.T) {
	m := Consistency(pnlSamples(5, -5, 5))
	if !almostEq(m.HitRate, 2.0/3.0) {
		t.Fatalf("hit rate: %v", m.HitRate)
	}
}

func TestConsistencyEmpty(t *testing.T) {
	m := Consistency(nil)
	if m.MaxWinStreak != 0 || m.PnlStdDev != 0 || m.HitRate != 0 {
		t.Fatalf("expected neutral zeros: %+v", m)
	}
}

func TestExecutionQualityTimeOfDay(t *testing.T) {
	mk := func(h int, pnl float64) Sample {
		return Sample{Pnl: pnl, EntryDate: time.Date(2025, 3, 10, h, 30, 0, 0, time.UTC)}
	}
	m := ExecutionQuality([]Sample{mk(9, 100), mk(9, -20), mk(14, 10), mk(22, -80)})
	// 9点均值40，14点均值10，22点均值-80
	if m.BestTimeOfDay != 9 {
		t.Fatalf("best hour: %d", m.BestTimeOfDay)
	}
	if m.WorstTimeOfDay != 22 {
		t.Fatalf("worst hour: %d", m.WorstTimeOfDay)
	}
}

func TestExecutionQualityTimeOfDayTieTakesEarliestHour(t *testing.T) {
	mk := func(h int, pnl float64) Sample {
		return Sample{Pnl: pnl, EntryDate: time.Date(2025, 3, 10, h, 0, 0, 0, time.UTC)}
	}
	m := ExecutionQuality([]Sample{mk(8, 50), mk(15, 50)})
	if m.BestTimeOfDay != 8 || m.WorstTimeOfDay != 8 {
		t.Fatalf("ties must resolve to the earliest hour: %+v", m)
	}
}

func TestExecutionQualityEmpty(t *testing.T) {
	m := ExecutionQuality(nil)
	if m.BestTimeOfDay != -1 || m.WorstTimeOfDay != -1 {
		t.Fatalf("no samples means no hour: %+v", m)
	}
	if m.AvgHoldTime != 0 || m.AvgEntryQuality != 0 {
		t.Fatalf("expected neutral zeros: %+v", m)
	}
}

func TestExecutionQualityAvgHoldTime(t *testing.T) {
	samples := []Sample{
		{HoldTimeMs: time.Hour.Milliseconds()},
		{HoldTimeMs: 3 * time.Hour.Milliseconds()},
		{HoldTimeMs: 2 * time.Hour.Milliseconds()},
	}
	m := ExecutionQuality(samples)
	if m.AvgHoldTime != 2*time.Hour.Milliseconds() {
		t.Fatalf("avg hold time: %d", m.AvgHoldTime)
	}
}

func TestExecutionQualityAverages(t *testing.T) {
	samples := []Sample{
		{EntryQuality: 1, ExitQuality: 3},
		{EntryQuality: 3, ExitQuality: 1},
	}
	m := ExecutionQuality(samples)
	if !almostEq(m.AvgEntryQuality, 2) || !almostEq(m.AvgExitQuality, 2) {
		t.Fatalf("quality averages: %+v", m)
	}
}

func TestSamplesFromSkipsOpenTrades(t *testing.T) {
	entries := []entity.JournalEntry{
		{Status: consts.TradeStatusClosed, Pnl: 10},
		{Status: consts.TradeStatusOpen},
		{Status: consts.TradeStatusClosed, Pnl: -5},
	}
	samples := SamplesFrom(entries)
	if len(samples) != 2 {
		t.Fatalf("open trades must be excluded, got %d samples", len(samples))
	}
}
