package reconcile

import (
	"testing"
	"time"

	"tradevault/internal/consts"
	"tradevault/utils/uuid"
)

func mkTime(h int) time.Time {
	return time.Date(2025, 3, 10, h, 0, 0, 0, time.UTC)
}

func TestNormalizeFiltersAndDedups(t *testing.T) {
	deals := []Deal{
		{Id: "1", Type: DealTypeBalance, PositionId: ""},            // 入金
		{Id: "2", Type: DealTypeBuy, EntryType: DealEntryIn},        // 缺positionId
		{Id: "3", Type: DealTypeBuy, EntryType: DealEntryIn, PositionId: "p1"},
		{Id: "3", Type: DealTypeBuy, EntryType: DealEntryIn, PositionId: "p1"}, // 重复id
		{Id: "4", Type: DealTypeSell, EntryType: DealEntryOut, PositionId: "p1"},
	}
	got := Normalize(deals)
	if len(got) != 2 {
		t.Fatalf("expected 2 deals after normalize, got %d", len(got))
	}
	if got[0].Id != "3" || got[1].Id != "4" {
		t.Fatalf("normalize broke input order: %+v", got)
	}
}

func TestGroupByPositionKeepsFirstSeenOrder(t *testing.T) {
	deals := []Deal{
		{Id: "1", PositionId: "p2"},
		{Id: "2", PositionId: "p1"},
		{Id: "3", PositionId: "p2"},
		{Id: "4", PositionId: "p1"},
	}
	groups := GroupByPosition(deals)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].PositionId != "p2" || groups[1].PositionId != "p1" {
		t.Fatalf("group order should follow first appearance, got %s,%s", groups[0].PositionId, groups[1].PositionId)
	}
	if len(groups[0].Deals) != 2 || groups[0].Deals[0].Id != "1" || groups[0].Deals[1].Id != "3" {
		t.Fatalf("in-group order broken: %+v", groups[0].Deals)
	}
}

func TestPairPositionClosedTrade(t *testing.T) {
	g := PositionDeals{
		PositionId: "p1",
		Deals: []Deal{
			{Id: "1", Type: DealTypeBuy, EntryType: DealEntryIn, PositionId: "p1", Symbol: "EURUSD", Volume: 0.5, Price: 1.1, Time: mkTime(9), StopLoss: 1.05},
			{Id: "2", Type: DealTypeSell, EntryType: DealEntryOut, PositionId: "p1", Symbol: "EURUSD", Price: 1.2, Profit: 50, Time: mkTime(12), TakeProfit: 1.25},
		},
	}
	tr, err := PairPosition(g)
	if err != nil {
		t.Fatalf("pair failed: %v", err)
	}
	if tr.Status != consts.TradeStatusClosed {
		t.Fatalf("expected closed, got %s", tr.Status)
	}
	if tr.Direction != consts.TradeDirectionLong {
		t.Fatalf("buy entry should be long, got %s", tr.Direction)
	}
	if tr.Pnl != 50 {
		t.Fatalf("pnl should come from exit deal profit, got %v", tr.Pnl)
	}
	if tr.HoldTimeMs != 3*time.Hour.Milliseconds() {
		t.Fatalf("hold time wrong: %d", tr.HoldTimeMs)
	}
	// 平仓成交上没有止损，回退到开仓成交的快照
	if tr.StopLoss != 1.05 || tr.TakeProfit != 1.25 {
		t.Fatalf("sl/tp fallback wrong: sl=%v tp=%v", tr.StopLoss, tr.TakeProfit)
	}
}

func TestPairPositionOpenTrade(t *testing.T) {
	g := PositionDeals{
		PositionId: "p9",
		Deals: []Deal{
			{Id: "1", Type: DealTypeSell, EntryType: DealEntryIn, PositionId: "p9", Symbol: "XAUUSD", Price: 2300, Time: mkTime(8)},
		},
	}
	tr, err := PairPosition(g)
	if err != nil {
		t.Fatalf("pair failed: %v", err)
	}
	if tr.Status != consts.TradeStatusOpen {
		t.Fatalf("entry without exit should stay open, got %s", tr.Status)
	}
	if tr.Direction != consts.TradeDirectionShort {
		t.Fatalf("sell entry should be short, got %s", tr.Direction)
	}
	if tr.ExitDate != 0 || tr.Pnl != 0 || tr.HoldTimeMs != 0 {
		t.Fatalf("open trade should keep exit fields zero: %+v", tr)
	}
}

func TestPairPositionNoEntryDeal(t *testing.T) {
	g := PositionDeals{
		PositionId: "p2",
		Deals: []Deal{
			{Id: "1", Type: DealTypeSell, EntryType: DealEntryOut, PositionId: "p2", Symbol: "EURUSD", Price: 1.2, Profit: -20, Time: mkTime(10)},
		},
	}
	if _, err := PairPosition(g); err == nil {
		t.Fatal("exit without entry should be rejected")
	}
}

func TestPairPositionIgnoresShapelessDeals(t *testing.T) {
	g := PositionDeals{
		PositionId: "p5",
		Deals: []Deal{
			// 缺symbol缺价格的开仓成交等同不存在，配对要跳过它
			{Id: "1", Type: DealTypeBuy, EntryType: DealEntryIn, PositionId: "p5", Time: mkTime(9)},
			{Id: "2", Type: DealTypeBuy, EntryType: DealEntryIn, PositionId: "p5", Symbol: "EURUSD", Price: 1.1, Time: mkTime(10)},
			// 缺价格的平仓成交同理，这笔交易只能保持open
			{Id: "3", Type: DealTypeSell, EntryType: DealEntryOut, PositionId: "p5", Symbol: "EURUSD", Profit: 9, Time: mkTime(11)},
		},
	}
	tr, err := PairPosition(g)
	if err != nil {
		t.Fatalf("pair failed: %v", err)
	}
	if tr.EntryPrice != 1.1 || tr.EntryDate != mkTime(10).UnixMilli() {
		t.Fatalf("entry must come from the first well-formed deal: %+v", tr)
	}
	if tr.Status != consts.TradeStatusOpen || tr.Pnl != 0 {
		t.Fatalf("price-less exit must be treated as absent: %+v", tr)
	}
}

func TestReconcileSkipsMalformedGroups(t *testing.T) {
	deals := []Deal{
		{Id: "1", Type: DealTypeBuy, EntryType: DealEntryIn, PositionId: "p1", Symbol: "EURUSD", Price: 1.1, Time: mkTime(9)},
		{Id: "2", Type: DealTypeSell, EntryType: DealEntryOut, PositionId: "p1", Symbol: "EURUSD", Price: 1.2, Profit: 10, Time: mkTime(10)},
		{Id: "3", Type: DealTypeSell, EntryType: DealEntryOut, PositionId: "orphan", Symbol: "EURUSD", Price: 1.3, Profit: -5, Time: mkTime(11)},
		{Id: "4", Type: DealTypeBalance},
		// 开仓成交缺symbol和价格，整组视作没有开仓
		{Id: "5", Type: DealTypeBuy, EntryType: DealEntryIn, PositionId: "p3", Time: mkTime(12)},
	}
	trades := Reconcile(deals)
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}
	if trades[0].PositionId != "p1" {
		t.Fatalf("wrong trade survived: %+v", trades[0])
	}
}

func TestSourceHashDeterministic(t *testing.T) {
	a := SourceHash(100, "p1")
	b := SourceHash(100, "p1")
	if a != b {
		t.Fatal("same account+position must hash to the same value")
	}
	if a == SourceHash(101, "p1") || a == SourceHash(100, "p2") {
		t.Fatal("different account or position must not collide")
	}
}

func TestBuilderNeutralPlaceholders(t *testing.T) {
	b := NewBuilder(uuid.NewNode(1), nil, nil)
	tr := Trade{
		PositionId: "p1",
		Symbol:     "EURUSD",
		Direction:  consts.TradeDirectionLong,
		Status:     consts.TradeStatusClosed,
		EntryDate:  mkTime(9).UnixMilli(),
		ExitDate:   mkTime(11).UnixMilli(),
		Pnl:        30,
		HoldTimeMs: 2 * time.Hour.Milliseconds(),
	}
	e := b.Build(7, 100, tr)
	if e.EntryQuality != consts.DefaultEntryQuality || e.ExitQuality != consts.DefaultExitQuality {
		t.Fatalf("quality placeholders wrong: %d/%d", e.EntryQuality, e.ExitQuality)
	}
	if e.Grade != consts.DefaultGrade || e.MarketSession != consts.DefaultMarketSession {
		t.Fatalf("grade/session placeholders wrong: %s/%s", e.Grade, e.MarketSession)
	}
	if e.SourceHash != SourceHash(100, "p1") {
		t.Fatal("builder must derive source hash from account and position")
	}
	if e.Id == 0 || e.UserId != 7 {
		t.Fatalf("id/user wiring wrong: %+v", e)
	}
	if e.HoldTimeMs != 2*time.Hour.Milliseconds() || e.Pnl != 30 {
		t.Fatalf("closed fields not carried: %+v", e)
	}
}
