package model

import "tradevault/utils"

// 绑定MT5账户的参数，只收投资者（只读）密码
type BrokerLinkReq struct {
	AccountNumber    string `json:"account_number" binding:"required" label:"账户号"`
	BrokerServer     string `json:"broker_server" binding:"required" label:"服务器"`
	InvestorPassword string `json:"investor_password" binding:"required" label:"投资者密码"`
}

type BrokerLinkRes struct {
	BrokerAccountId int64  `json:"broker_account_id,string"`
	Status          string `json:"status"`
}

type BrokerAccountRes struct {
	BrokerAccountId int64          `json:"broker_account_id,string"`
	AccountNumber   string         `json:"account_number"`
	BrokerServer    string         `json:"broker_server"`
	Status          string         `json:"status"`
	LastSyncedAt    utils.JsonTime `json:"last_synced_at"`
	CreatedAt       utils.JsonTime `json:"created_at"`
}

type BrokerSyncReq struct {
	BrokerAccountId int64 `json:"broker_account_id,string" binding:"required" label:"券商账户"`
}

// BrokerSyncRes 一次同步落库的汇总
type BrokerSyncRes struct {
	BrokerAccountId int64    `json:"broker_account_id,string"`
	TradesFound     int      `json:"trades_found"`
	Created         int      `json:"created"`
	Updated         int      `json:"updated"`
	Failed          int      `json:"failed"`
	FailedHashes    []string `json:"failed_hashes,omitempty"`
	SyncedAt        string   `json:"synced_at"`
}

// IngestReport 同步完成后发往kafka的事件载荷
type IngestReport struct {
	UserId          int64    `json:"user_id,string"`
	BrokerAccountId int64    `json:"broker_account_id,string"`
	TradesFound     int      `json:"trades_found"`
	Created         int      `json:"created"`
	Updated         int      `json:"updated"`
	Failed          int      `json:"failed"`
	FailedHashes    []string `json:"failed_hashes,omitempty"`
	SyncedAt        string   `json:"synced_at"`
}
