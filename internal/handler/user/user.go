package user

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tradevault/internal/consts"
	"tradevault/internal/model"
	"tradevault/internal/service"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
	"tradevault/pkg/logger"
	"tradevault/pkg/response"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// @Summary		用户注册接口
// @version		1.0
// @description	注册新用户，注册成功后发送激活邮件
// @Accept			json
// @Produce		json
// @Param			name		body		string	true	"用户名称"
// @Param			email		body		string	true	"邮箱"
// @Param			password	body		string	true	"密码"
// @Param			captcha		body		string	true	"验证码"
// @Success		200			{object}	response.ApiResponse{data=model.UserRegisterRes}
// @Router			/api/v1/auth/register [post]
func (handler *UserHandler) UserRegister() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserRegisterReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		res, err := handler.service.UserRegister(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			logger.Error(err.Error())
			return
		}
		response.Created(ctx, res)
	}
}

// @Summary		用户登陆接口
// @version		1.0
// @description	邮箱+密码登陆，返回jwt token
// @Accept			json
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=model.UserLoginRes}
// @Router			/api/v1/auth/login [post]
func (handler *UserHandler) UserLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserLoginReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		res, err := handler.service.UserLogin(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		用户登出接口
// @version		1.0
// @description	token进黑名单，直到自然过期
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/user/logout [post]
func (handler *UserHandler) UserLogout() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if tokenStr == "" {
			response.RequireAuthErr(ctx, errors.WithCode(ecode.RequireAuthErr, ""))
			return
		}
		if err := handler.service.UserLogout(ctx, tokenStr); err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.Unknown, "登出失败"), nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		token状态查询
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.UserAuthStatusRes}
// @Router			/api/v1/user/authstatus [get]
func (handler *UserHandler) UserAuthStatus() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := handler.service.UserAuthStatus(ctx)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		获取用户详情
// @version		1.0
// @description	当前登陆用户的详细信息
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse{data=model.UserGetInfoRes}
// @Router			/api/v1/user/info [get]
func (handler *UserHandler) UserGetInfo() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.UserGetInfo(ctx, userId)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.NotFoundErr, "未找到用户信息"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// @Summary		注销账户
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/user [delete]
func (handler *UserHandler) UserDelete() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := handler.service.UserDelete(ctx); err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.Unknown, "注销失败"), nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		修改邮箱
// @version		1.0
// @description	修改后需要重新激活
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/user/email [put]
func (handler *UserHandler) UserUpdateEmail() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserUpdateEmailReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		if err := handler.service.UserUpdateEmail(ctx, userId, req.NewEmail); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		修改密码
// @version		1.0
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/user/password [put]
func (handler *UserHandler) UserUpdatePassword() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserUpdatePasswordReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		if err := handler.service.UserUpdatePassword(ctx, userId, req); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		修改用户名称
// @version		1.0
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/user/name [put]
func (handler *UserHandler) UserUpdateName() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserUpdateNameReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		if err := handler.service.UserUpdateName(ctx, userId, req.NewName); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		修改订阅等级
// @version		1.0
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/user/subscription [put]
func (handler *UserHandler) UserUpdateSubscription() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserUpdateSubscriptionReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		if err := handler.service.UserUpdateSubscription(ctx, userId, req.NewSubscription); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		修改头像
// @version		1.0
// @Accept			json
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/user/photo [put]
func (handler *UserHandler) UserUpdatePhoto() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserUpdatePhotoReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		userId := ctx.GetInt64(consts.UserID)
		if err := handler.service.UserUpdatePhoto(ctx, userId, req.NewPhoto); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		重发激活邮件
// @version		1.0
// @Produce		json
// @Param			Authorization	header		string	true	"Bearer 用户令牌"
// @Success		200				{object}	response.ApiResponse
// @Router			/api/v1/user/active [post]
func (handler *UserHandler) UserActiveGen() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		if err := handler.service.UserActiveGen(ctx, userId); err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.ActiveErr, ""), nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		邮箱激活回调
// @version		1.0
// @Produce		json
// @Param			active_code	query		string	true	"激活码"
// @Success		200			{object}	response.ApiResponse
// @Router			/api/v1/auth/active [get]
func (handler *UserHandler) UserActiveChange() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserActiveReq
		if err := ctx.ShouldBind(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		if err := handler.service.UserActiveChange(ctx, req.ActiveCode); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		忘记密码
// @version		1.0
// @description	发送带临时码的密码找回邮件
// @Accept			json
// @Produce		json
// @Success		200	{object}	response.ApiResponse
// @Router			/api/v1/auth/forget [post]
func (handler *UserHandler) UserPasswordForget() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserForgetReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		if err := handler.service.UserPasswordForget(ctx, req); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		临时码重置密码
// @version		1.0
// @Accept			json
// @Produce		json
// @Success		200	{object}	response.ApiResponse
// @Router			/api/v1/auth/resetpassword [post]
func (handler *UserHandler) UserPasswordReset() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.UserPasswordResetReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "请求参数错误"), nil)
			return
		}
		if err := handler.service.UserPasswordReset(ctx, req); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		获取图形验证码
// @version		1.0
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=model.CaptchaRes}
// @Router			/api/v1/auth/captcha [get]
func (handler *UserHandler) CaptchaGen() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := handler.service.CaptchaGen(ctx)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.Unknown, "验证码生成失败"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
