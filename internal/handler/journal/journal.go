package journal

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

type JournalHandler struct {
	service service.JournalService
}

func NewJournalHandler(service service.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

// @Summary		手工录入日志条目
// @version		1.0
// @description	创建一条完整的交易日志
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		201				{object}	response.ApiResponse{data=model.JournalEntryCreateRes}
// @Router			/api/v1/journal [post]
func (handler *JournalHandler) JournalCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.JournalEntryCreateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.JournalCreate(ctx, userId, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.Created(ctx, res)
	}
}

// @Summary		获取单条日志
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"条目id"
// @Success		200				{object}	response.ApiResponse{data=model.JournalEntryRes}
// @Router			/api/v1/journal/{id} [get]
func (handler *JournalHandler) JournalGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		entryId := cast.ToInt64(ctx.Param("id"))
		res, err := handler.service.JournalGet(ctx, userId, entryId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		分页查询日志
// @version		1.0
// @description	按开仓时间倒序返回当前用户的日志条目
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			page			query		int		false	"页码"
// @Param			page_size		query		int		false	"每页条数"
// @Success		200				{object}	response.ApiResponse{data=[]model.JournalEntryRes}
// @Router			/api/v1/journal [get]
func (handler *JournalHandler) JournalList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		page := cast.ToInt(ctx.DefaultQuery("page", "1"))
		pageSize := cast.ToInt(ctx.DefaultQuery("page_size", "50"))
		res, err := handler.service.JournalList(ctx, userId, page, pageSize)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.Unknown, "查询失败"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		编辑日志条目
// @version		1.0
// @description	merge语义，只更新请求里出现的字段
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"条目id"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/journal/{id} [put]
func (handler *JournalHandler) JournalEdit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.JournalEntryEditReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		entryId := cast.ToInt64(ctx.Param("id"))
		if err := handler.service.JournalEdit(ctx, userId, entryId, req); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		删除日志条目
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"条目id"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/journal/{id} [delete]
func (handler *JournalHandler) JournalDelete() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		entryId := cast.ToInt64(ctx.Param("id"))
		if err := handler.service.JournalDelete(ctx, userId, entryId); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}
