package service

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"tradevault/conf"
	"tradevault/internal/broker/metaapi"
	"tradevault/internal/consts"
	"tradevault/internal/dao"
	"tradevault/internal/ingest"
	"tradevault/internal/model"
	"tradevault/internal/model/entity"
	"tradevault/internal/reconcile"
	"tradevault/pkg/cache"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
	"tradevault/pkg/kafka"
	"tradevault/pkg/logger"
	"tradevault/utils/security"
	"tradevault/utils/uuid"
)

// SyncNotifier 同步过程中的进度推送（websocket网关实现）
type SyncNotifier interface {
	NotifySync(userId int64, stage string, detail interface{})
}

type noopNotifier struct{}

func (noopNotifier) NotifySync(int64, string, interface{}) {}

type BrokerService interface {
	BrokerLink(ctx context.Context, userId int64, req model.BrokerLinkReq) (res model.BrokerLinkRes, err error)
	BrokerList(ctx context.Context, userId int64) (res []model.BrokerAccountRes, err error)
	BrokerUnlink(ctx context.Context, userId, accountId int64) error
	// 拉流水、对账、落库，返回本次入库汇总
	BrokerSync(ctx context.Context, userId, accountId int64) (res model.BrokerSyncRes, err error)
}

type brokerService struct {
	bd       dao.BrokerDao
	sd       dao.SetupDao
	client   metaapi.Client
	uploader *ingest.Uploader
	builder  *reconcile.Builder
	producer kafka.ProducerService
	notifier SyncNotifier
	rc       *redis.Client
	iSrv     uuid.SnowNode
}

func NewBrokerService(bd dao.BrokerDao, jd dao.JournalDao, sd dao.SetupDao, client metaapi.Client, producer kafka.ProducerService, notifier SyncNotifier) *brokerService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	node := uuid.NewNode(7)
	return &brokerService{
		bd:     bd,
		sd:     sd,
		client: client,
		uploader: ingest.NewUploader(jd,
			conf.AppConfig.Ingest.MaxConcurrentWrites,
			conf.AppConfig.Ingest.WriteTimeout,
		),
		builder:  reconcile.NewBuilder(node, nil, nil),
		producer: producer,
		notifier: notifier,
		rc:       cache.GetRedisClient(),
		iSrv:     *node,
	}
}

func (b *brokerService) BrokerLink(ctx context.Context, userId int64, req model.BrokerLinkReq) (res model.BrokerLinkRes, err error) {
	existing, err := b.bd.BrokerGetByNumber(ctx, userId, req.AccountNumber, req.BrokerServer)
	if err != nil && err != gorm.ErrRecordNotFound {
		return res, err
	}
	if err == nil && existing.Status != consts.BrokerAccountFailed {
		return res, errors.WithCode(ecode.BrokerLinkErr, "account already linked")
	}

	// 只读密码加密落库
	encrypted, err := security.EncryptString(req.InvestorPassword, conf.AppConfig.Jwt.Secret)
	if err != nil {
		return res, errors.Wrap(err, ecode.BrokerLinkErr, "")
	}

	account := existing
	if account.Id == 0 {
		account = entity.BrokerAccount{
			Id:               b.iSrv.GenSnowID(),
			UserId:           userId,
			AccountNumber:    req.AccountNumber,
			BrokerServer:     req.BrokerServer,
			InvestorPassword: encrypted,
			Status:           consts.BrokerAccountCreated,
		}
		if err = b.bd.BrokerCreate(ctx, &account); err != nil {
			return res, err
		}
	}

	// provider侧开通失败不回滚本地记录，状态标FAILED让用户重试
	providerId, err := b.client.ProvisionAccount(ctx, req.AccountNumber, req.InvestorPassword, req.BrokerServer)
	if err != nil {
		_ = b.bd.BrokerUpdateStatus(ctx, account.Id, consts.BrokerAccountFailed, "")
		return res, errors.Wrap(err, ecode.BrokerLinkErr, "")
	}
	if err = b.client.DeployAccount(ctx, providerId); err != nil {
		_ = b.bd.BrokerUpdateStatus(ctx, account.Id, consts.BrokerAccountFailed, providerId)
		return res, errors.Wrap(err, ecode.BrokerLinkErr, "")
	}
	if err = b.bd.BrokerUpdateStatus(ctx, account.Id, consts.BrokerAccountDeployed, providerId); err != nil {
		return res, err
	}
	res.BrokerAccountId = account.Id
	res.Status = consts.BrokerAccountDeployed
	return res, nil
}

func (b *brokerService) BrokerList(ctx context.Context, userId int64) ([]model.BrokerAccountRes, error) {
	accounts, err := b.bd.BrokerList(ctx, userId)
	if err != nil {
		return nil, err
	}
	res := make([]model.BrokerAccountRes, 0, len(accounts))
	for _, a := range accounts {
		res = append(res, model.BrokerAccountRes{
			BrokerAccountId: a.Id,
			AccountNumber:   a.AccountNumber,
			BrokerServer:    a.BrokerServer,
			Status:          a.Status,
			LastSyncedAt:    a.LastSyncedAt,
			CreatedAt:       a.CreatedAt,
		})
	}
	return res, nil
}

func (b *brokerService) BrokerUnlink(ctx context.Context, userId, accountId int64) error {
	if _, err := b.bd.BrokerGetById(ctx, userId, accountId); err != nil {
		return errors.Wrap(err, ecode.NotFoundErr, "broker account not found")
	}
	return b.bd.BrokerDelete(ctx, userId, accountId)
}

func (b *brokerService) BrokerSync(ctx context.Context, userId, accountId int64) (res model.BrokerSyncRes, err error) {
	account, err := b.bd.BrokerGetById(ctx, userId, accountId)
	if err != nil {
		return res, errors.Wrap(err, ecode.NotFoundErr, "broker account not found")
	}
	if account.Status != consts.BrokerAccountDeployed || account.ProviderAccountId == "" {
		return res, errors.WithCode(ecode.BrokerSyncErr, "account is not deployed")
	}

	// 同一账户同一时刻只允许一个同步在跑
	lockKey := consts.SyncLockPrefix + strconv.FormatInt(accountId, 10)
	ok, err := b.rc.SetNX(ctx, lockKey, time.Now().Unix(), 5*time.Minute).Result()
	if err != nil {
		return res, err
	}
	if !ok {
		return res, errors.WithCode(ecode.BrokerSyncErr, "sync already in progress")
	}
	defer b.rc.Del(ctx, lockKey)

	// 首次同步按配置回溯，之后从上次同步点续拉。
	// 窗口起点往前多挪一天，把还没平仓就被上次窗口切掉的position捞回来
	start := time.Time(account.LastSyncedAt)
	if start.IsZero() || start.Unix() <= 0 {
		if conf.AppConfig.Ingest.InitialLookback > 0 {
			start = time.Now().Add(-conf.AppConfig.Ingest.InitialLookback)
		} else {
			start = time.Unix(0, 0)
		}
	} else {
		start = start.Add(-24 * time.Hour)
	}
	end := time.Now()

	b.notifier.NotifySync(userId, "fetching", map[string]interface{}{"broker_account_id": accountId})
	deals, err := b.client.HistoryDeals(ctx, account.ProviderAccountId, start, end)
	if err != nil {
		return res, errors.Wrap(err, ecode.BrokerSyncErr, "")
	}

	trades := reconcile.Reconcile(deals)
	entries := make([]entity.JournalEntry, 0, len(trades))
	for _, t := range trades {
		entries = append(entries, b.builder.Build(userId, accountId, t))
	}
	b.notifier.NotifySync(userId, "uploading", map[string]interface{}{
		"broker_account_id": accountId,
		"trades_found":      len(trades),
	})

	report := b.uploader.Upload(ctx, entries)
	if report.Err != nil {
		b.notifier.NotifySync(userId, "failed", map[string]interface{}{"broker_account_id": accountId})
		return res, errors.Wrap(report.Err, ecode.IngestErr, "")
	}
	// 重新同步改写了已归属setup的盈亏（open→closed收口是常态），
	// 把差额补回setup的累计盈亏
	for setupId, delta := range report.SetupPnlDeltas {
		if err := b.sd.SetupAddPnl(ctx, setupId, delta); err != nil {
			logger.Warnf("补记setup %d 盈亏失败: %v", setupId, err)
		}
	}
	if err := b.bd.BrokerTouchSync(ctx, accountId); err != nil {
		logger.Warnf("刷新同步时间失败: %v", err)
	}

	syncedAt := end.UTC().Format(time.RFC3339)
	res = model.BrokerSyncRes{
		BrokerAccountId: accountId,
		TradesFound:     report.Total,
		Created:         report.Created,
		Updated:         report.Updated,
		Failed:          report.Failed,
		FailedHashes:    report.FailedHashes,
		SyncedAt:        syncedAt,
	}
	b.notifier.NotifySync(userId, "done", res)

	// 入库报告进kafka，失败只记日志，不影响同步结果
	if b.producer != nil {
		ingestReport := model.IngestReport{
			UserId:          userId,
			BrokerAccountId: accountId,
			TradesFound:     report.Total,
			Created:         report.Created,
			Updated:         report.Updated,
			Failed:          report.Failed,
			FailedHashes:    report.FailedHashes,
			SyncedAt:        syncedAt,
		}
		key := []byte(strconv.FormatInt(userId, 10))
		if err := b.producer.ProduceIngestReport(ctx, key, ingestReport); err != nil {
			logger.Warn("入库报告写kafka失败", logger.Pair("error", err.Error()))
		}
	}
	return res, nil
}
