package broker

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"tradevault/internal/consts"
	"tradevault/internal/model"
	"tradevault/internal/service"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
	"tradevault/pkg/response"
)

type BrokerHandler struct {
	service service.BrokerService
}

func NewBrokerHandler(service service.BrokerService) *BrokerHandler {
	return &BrokerHandler{service: service}
}

// @Summary		绑定MT5账户
// @version		1.0
// @description	用投资者（只读）密码在provider侧开通并部署账户镜像
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		201				{object}	response.ApiResponse{data=model.BrokerLinkRes}
// @Router			/api/v1/broker [post]
func (handler *BrokerHandler) BrokerLink() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.BrokerLinkReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.BrokerLink(ctx, userId, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.Created(ctx, res)
	}
}

// @Summary		已绑定账户列表
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=[]model.BrokerAccountRes}
// @Router			/api/v1/broker [get]
func (handler *BrokerHandler) BrokerList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.BrokerList(ctx, userId)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.Unknown, "查询失败"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		解绑账户
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"账户id"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/broker/{id} [delete]
func (handler *BrokerHandler) BrokerUnlink() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		accountId := cast.ToInt64(ctx.Param("id"))
		if err := handler.service.BrokerUnlink(ctx, userId, accountId); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		触发交易流水同步
// @version		1.0
// @description	从provider拉取成交流水，对账配对后幂等落库，返回本次入库汇总
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"账户id"
// @Success		200				{object}	response.ApiResponse{data=model.BrokerSyncRes}
// @Router			/api/v1/broker/{id}/sync [post]
func (handler *BrokerHandler) BrokerSync() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		accountId := cast.ToInt64(ctx.Param("id"))
		res, err := handler.service.BrokerSync(ctx, userId, accountId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
