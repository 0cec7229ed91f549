package reconcile

import (
	"tradevault/internal/consts"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
)

// Trade 配对完成的一笔往返交易。没等到平仓成交时Status是open，
// 平仓相关字段保持零值
type Trade struct {
	PositionId string
	Symbol     string
	Direction  string // long / short
	Status     string // open / closed
	Volume     float64
	EntryDate  int64 // unix毫秒
	EntryPrice float64
	ExitDate   int64
	ExitPrice  float64
	StopLoss   float64
	TakeProfit float64
	Pnl        float64
	HoldTimeMs int64
}

// PairPosition 从一组同position的成交里配出一笔交易。
// 开仓取第一条DEAL_ENTRY_IN，平仓取第一条DEAL_ENTRY_OUT；
// 缺symbol或价格的成交当作不存在，不参与配对；
// 找不到开仓成交视为残缺数据，报错让上层跳过这一组
func PairPosition(group PositionDeals) (Trade, error) {
	var entry, exit *Deal
	for i := range group.Deals {
		d := &group.Deals[i]
		if d.Symbol == "" || d.Price == 0 {
			continue
		}
		switch d.EntryType {
		case DealEntryIn:
			if entry == nil {
				entry = d
			}
		case DealEntryOut:
			if exit == nil {
				exit = d
			}
		}
	}
	if entry == nil {
		return Trade{}, errors.Wrapf(nil, ecode.IngestErr, "position %s has no entry deal", group.PositionId)
	}

	direction := consts.TradeDirectionShort
	if entry.Type == DealTypeBuy {
		direction = consts.TradeDirectionLong
	}

	t := Trade{
		PositionId: group.PositionId,
		Symbol:     entry.Symbol,
		Direction:  direction,
		Status:     consts.TradeStatusOpen,
		Volume:     entry.Volume,
		EntryDate:  entry.Time.UnixMilli(),
		EntryPrice: entry.Price,
	}
	if exit == nil {
		return t, nil
	}

	t.Status = consts.TradeStatusClosed
	t.ExitDate = exit.Time.UnixMilli()
	t.ExitPrice = exit.Price
	t.Pnl = exit.Profit
	t.HoldTimeMs = t.ExitDate - t.EntryDate
	// 止损止盈优先取平仓成交上的快照，缺失再回退开仓成交
	t.StopLoss = firstNonZero(exit.StopLoss, entry.StopLoss)
	t.TakeProfit = firstNonZero(exit.TakeProfit, entry.TakeProfit)
	return t, nil
}

// Reconcile 整条流水线：过滤、归组、逐组配对。
// 配不出来的组静默跳过，残缺的历史数据不该拖垮整次同步
func Reconcile(deals []Deal) []Trade {
	groups := GroupByPosition(Normalize(deals))
	trades := make([]Trade, 0, len(groups))
	for _, g := range groups {
		t, err := PairPosition(g)
		if err != nil {
			continue
		}
		trades = append(trades, t)
	}
	return trades
}

func firstNonZero(vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
