package reconcile

import "time"

// MT5成交记录的类型常量，与MetaApi的deal对象保持一致
const (
	DealTypeBuy     = "DEAL_TYPE_BUY"
	DealTypeSell    = "DEAL_TYPE_SELL"
	DealTypeBalance = "DEAL_TYPE_BALANCE"

	DealEntryIn  = "DEAL_ENTRY_IN"
	DealEntryOut = "DEAL_ENTRY_OUT"
)

// Deal 一条原始成交。开仓和平仓各是一条deal，靠PositionId归到同一笔持仓
type Deal struct {
	Id         string    `json:"id"`
	Type       string    `json:"type"`
	EntryType  string    `json:"entryType"`
	PositionId string    `json:"positionId"`
	Symbol     string    `json:"symbol"`
	Volume     float64   `json:"volume"`
	Price      float64   `json:"price"`
	Profit     float64   `json:"profit"`
	StopLoss   float64   `json:"stopLoss"`
	TakeProfit float64   `json:"takeProfit"`
	Time       time.Time `json:"time"`
}

// IsTradeDeal 余额变动（入金出金）不是交易，没有positionId的记录无从归组
func (d Deal) IsTradeDeal() bool {
	return d.Type != DealTypeBalance && d.PositionId != ""
}
