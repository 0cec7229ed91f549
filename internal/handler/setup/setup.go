package setup

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

type SetupHandler struct {
	service service.SetupService
}

func NewSetupHandler(service service.SetupService) *SetupHandler {
	return &SetupHandler{service: service}
}

// @Summary		创建setup
// @version		1.0
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		201				{object}	response.ApiResponse{data=model.SetupCreateRes}
// @Router			/api/v1/setup [post]
func (handler *SetupHandler) SetupCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.SetupCreateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.SetupCreate(ctx, userId, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.Created(ctx, res)
	}
}

// @Summary		获取单个setup
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"setup id"
// @Success		200				{object}	response.ApiResponse{data=model.SetupRes}
// @Router			/api/v1/setup/{id} [get]
func (handler *SetupHandler) SetupGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		setupId := cast.ToInt64(ctx.Param("id"))
		res, err := handler.service.SetupGet(ctx, userId, setupId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		setup列表
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=[]model.SetupRes}
// @Router			/api/v1/setup [get]
func (handler *SetupHandler) SetupList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.SetupList(ctx, userId)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.Unknown, "查询失败"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		编辑setup
// @version		1.0
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"setup id"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/setup/{id} [put]
func (handler *SetupHandler) SetupEdit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.SetupEditReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		setupId := cast.ToInt64(ctx.Param("id"))
		if err := handler.service.SetupEdit(ctx, userId, setupId, req); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		删除setup
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"setup id"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/setup/{id} [delete]
func (handler *SetupHandler) SetupDelete() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		setupId := cast.ToInt64(ctx.Param("id"))
		if err := handler.service.SetupDelete(ctx, userId, setupId); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		setup指标
// @version		1.0
// @description	对该setup下全部已平仓条目做全量重算，返回三组指标
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"setup id"
// @Success		200				{object}	response.ApiResponse{data=model.SetupMetricsRes}
// @Router			/api/v1/setup/{id}/metrics [get]
func (handler *SetupHandler) SetupMetrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		setupId := cast.ToInt64(ctx.Param("id"))
		res, err := handler.service.SetupMetrics(ctx, userId, setupId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
