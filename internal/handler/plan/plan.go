package plan

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

type PlanHandler struct {
	service service.PlanService
}

func NewPlanHandler(service service.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// @Summary		创建交易计划
// @version		1.0
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		201				{object}	response.ApiResponse{data=model.PlanCreateRes}
// @Router			/api/v1/plan [post]
func (handler *PlanHandler) PlanCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PlanCreateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.PlanCreate(ctx, userId, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.Created(ctx, res)
	}
}

// @Summary		获取单个计划
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"计划id"
// @Success		200				{object}	response.ApiResponse{data=model.PlanRes}
// @Router			/api/v1/plan/{id} [get]
func (handler *PlanHandler) PlanGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		planId := cast.ToInt64(ctx.Param("id"))
		res, err := handler.service.PlanGet(ctx, userId, planId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		计划列表
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=[]model.PlanRes}
// @Router			/api/v1/plan [get]
func (handler *PlanHandler) PlanList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.PlanList(ctx, userId)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.Unknown, "查询失败"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		编辑计划
// @version		1.0
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"计划id"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/plan/{id} [put]
func (handler *PlanHandler) PlanEdit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PlanEditReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		planId := cast.ToInt64(ctx.Param("id"))
		if err := handler.service.PlanEdit(ctx, userId, planId, req); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		删除计划
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Param			id				path		string	true	"计划id"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/plan/{id} [delete]
func (handler *PlanHandler) PlanDelete() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		planId := cast.ToInt64(ctx.Param("id"))
		if err := handler.service.PlanDelete(ctx, userId, planId); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}
