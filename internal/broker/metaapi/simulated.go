package metaapi

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"tradevault/internal/reconcile"
)

var _ Client = (*SimulatedClient)(nil)

// SimulatedClient 本地开发用的假provider，不出网。
// 同一个账户每次都生成同一批成交，保证幂等同步可以在本地验证
type SimulatedClient struct{}

func NewSimulatedClient() *SimulatedClient {
	return &SimulatedClient{}
}

func (s *SimulatedClient) ProvisionAccount(_ context.Context, login, _, server string) (string, error) {
	return fmt.Sprintf("sim-%s-%s", server, login), nil
}

func (s *SimulatedClient) DeployAccount(context.Context, string) error {
	return nil
}

func (s *SimulatedClient) HistoryDeals(_ context.Context, providerAccountId string, start, end time.Time) ([]reconcile.Deal, error) {
	h := fnv.New64a()
	h.Write([]byte(providerAccountId))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	symbols := []string{"EURUSD", "GBPUSD", "XAUUSD", "USDJPY"}
	deals := make([]reconcile.Deal, 0, 64)
	// 从窗口起点起每隔若干小时开一笔仓，最后一笔留作未平仓
	cursor := start.UTC().Truncate(time.Hour)
	n := 0
	for cursor.Before(end) {
		n++
		positionId := fmt.Sprintf("%s-pos-%d", providerAccountId, n)
		entryType := reconcile.DealTypeBuy
		exitType := reconcile.DealTypeSell
		if rng.Intn(2) == 1 {
			entryType, exitType = exitType, entryType
		}
		price := 1 + rng.Float64()
		deals = append(deals, reconcile.Deal{
			Id:         fmt.Sprintf("%s-in", positionId),
			Type:       entryType,
			EntryType:  reconcile.DealEntryIn,
			PositionId: positionId,
			Symbol:     symbols[rng.Intn(len(symbols))],
			Volume:     float64(rng.Intn(10)+1) / 10,
			Price:      price,
			StopLoss:   price * 0.99,
			TakeProfit: price * 1.02,
			Time:       cursor,
		})

		holdHours := rng.Intn(6) + 1
		closeAt := cursor.Add(time.Duration(holdHours) * time.Hour)
		if closeAt.Before(end) {
			deals = append(deals, reconcile.Deal{
				Id:         fmt.Sprintf("%s-out", positionId),
				Type:       exitType,
				EntryType:  reconcile.DealEntryOut,
				PositionId: positionId,
				Symbol:     deals[len(deals)-1].Symbol,
				Volume:     deals[len(deals)-1].Volume,
				Price:      price * (1 + (rng.Float64()-0.45)/100),
				Profit:     float64(rng.Intn(400)) - 150,
				Time:       closeAt,
			})
		}
		cursor = cursor.Add(time.Duration(rng.Intn(8)+2) * time.Hour)
	}
	return deals, nil
}
