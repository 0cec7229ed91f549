package service

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"tradevault/conf"
	"tradevault/internal/consts"
	"tradevault/internal/dao"
	"tradevault/internal/model"
	"tradevault/internal/model/entity"
	"tradevault/pkg/cache"
	"tradevault/pkg/errors"
	"tradevault/pkg/errors/ecode"
	"tradevault/pkg/jwt"
	"tradevault/pkg/logger"
	"tradevault/pkg/mail"
	"tradevault/pkg/verification"
	"tradevault/utils"
	"tradevault/utils/security"
	"tradevault/utils/uuid"
)

const (
	activeCodePrefix = "Active_Code_list:"
	tempCodePrefix   = "Temp_Code_list:"
	tempCodeTTL      = 1200 * time.Second
)

type UserService interface {
	UserRegister(ctx *gin.Context, req model.UserRegisterReq) (res model.UserRegisterRes, err error)
	UserLogin(ctx *gin.Context, req model.UserLoginReq) (res model.UserLoginRes, err error)
	UserLogout(ctx context.Context, tokenStr string) error
	UserAuthStatus(ctx *gin.Context) (res model.UserAuthStatusRes, err error)
	UserGetInfo(ctx context.Context, userId int64) (res model.UserGetInfoRes, err error)
	UserDelete(ctx *gin.Context) error

	UserUpdateEmail(ctx context.Context, userId int64, newEmail string) error
	UserUpdatePassword(ctx context.Context, userId int64, req model.UserUpdatePasswordReq) error
	UserUpdateName(ctx context.Context, userId int64, newName string) error
	UserUpdateSubscription(ctx context.Context, userId int64, newSubscription string) error
	UserUpdatePhoto(ctx context.Context, userId int64, newPhoto string) error

	// 发送激活邮件
	UserActiveGen(ctx context.Context, userId int64) error
	// 激活码换激活状态
	UserActiveChange(ctx context.Context, activeCode string) error
	// 忘记密码：发临时码邮件
	UserPasswordForget(ctx *gin.Context, req model.UserForgetReq) error
	// 临时码重置密码
	UserPasswordReset(ctx context.Context, req model.UserPasswordResetReq) error

	CaptchaGen(ctx context.Context) (res model.CaptchaRes, err error)
}

type userService struct {
	ud       dao.UserDao
	iSrv     uuid.SnowNode
	rc       *redis.Client
	sender   *mail.Sender
	verifier *mail.Verifier
}

func NewUserService(ud dao.UserDao) *userService {
	s := &userService{
		ud:     ud,
		iSrv:   *uuid.NewNode(3),
		rc:     cache.GetRedisClient(),
		sender: mail.NewSender(conf.AppConfig.Email),
	}
	if conf.AppConfig.Email.PreCheck {
		s.verifier = mail.NewVerifier(conf.AppConfig.Email.Sender)
	}
	return s
}

func (u *userService) UserRegister(ctx *gin.Context, req model.UserRegisterReq) (res model.UserRegisterRes, err error) {
	if !verification.VerifyCaptcha(ctx, req.Captcha) {
		return res, errors.WithCode(ecode.CaptchaErr, "")
	}
	count, err := u.ud.UserVerifyEmail(ctx, req.Email)
	if err != nil {
		return res, err
	}
	if count > 0 {
		return res, errors.WithCode(ecode.UserExistErr, "")
	}
	// 可选的smtp可达性预检，环境不允许出网时关掉
	if u.verifier != nil {
		if err = u.verifier.VerifierEmail(req.Email); err != nil {
			return res, errors.Wrap(err, ecode.EmailErr, "")
		}
	}

	user := entity.User{
		Id:           u.iSrv.GenSnowID(),
		Name:         req.Name,
		Email:        req.Email,
		RegisteredIp: ctx.ClientIP(),
		Subscription: consts.SubscriptionFree,
		IsActive:     false,
	}
	if req.Subscription == consts.SubscriptionPro {
		user.Subscription = consts.SubscriptionPro
	}
	user.Password, err = security.Encrypt(req.Password)
	if err != nil {
		return res, err
	}
	if err = u.ud.UserCreate(ctx, &user); err != nil {
		return res, err
	}
	ctx.Set(consts.UserID, user.Id)

	// 激活邮件失败不影响注册结果，用户可以再次请求发送
	if err := u.UserActiveGen(ctx, user.Id); err != nil {
		logger.Warnf("发送激活邮件失败: %v", err)
	}
	res.UserId = user.Id
	return res, nil
}

func (u *userService) UserLogin(ctx *gin.Context, req model.UserLoginReq) (res model.UserLoginRes, err error) {
	if !verification.VerifyCaptcha(ctx, req.Captcha) {
		return res, errors.WithCode(ecode.CaptchaErr, "")
	}
	user, err := u.ud.UserGetByEmail(ctx, req.Email)
	if err != nil {
		return res, err
	}
	if user.Id == 0 || !security.ValidatePassword(req.Password, user.Password) {
		return res, errors.WithCode(ecode.PasswordErr, "")
	}

	expireAt := time.Now().Add(time.Duration(conf.AppConfig.Jwt.JwtTtl) * time.Second)
	token, err := jwt.GenToken(jwt.BuildClaims(expireAt, user.Id), conf.AppConfig.Jwt.Secret)
	if err != nil {
		return res, err
	}
	if err = u.ud.UserTouchLogin(ctx, user.Id); err != nil {
		logger.Warnf("更新登陆时间失败: %v", err)
	}
	ctx.Set(consts.UserID, user.Id)
	res.Token = token
	res.Timeout = expireAt.Unix()
	return res, nil
}

func (u *userService) UserLogout(ctx context.Context, tokenStr string) error {
	return jwt.JoinBlackList(ctx, tokenStr, conf.AppConfig.Jwt.Secret)
}

func (u *userService) UserAuthStatus(ctx *gin.Context) (res model.UserAuthStatusRes, err error) {
	tokenStr := ctx.GetString(consts.JWTTokenCtx)
	res.IsInvalid = tokenStr == "" || jwt.IsInBlackList(ctx, tokenStr)
	return res, nil
}

func (u *userService) UserGetInfo(ctx context.Context, userId int64) (res model.UserGetInfoRes, err error) {
	user, err := u.ud.UserGetById(ctx, userId)
	if err != nil {
		return res, err
	}
	if user.Id == 0 {
		return res, errors.WithCode(ecode.UserNotFoundErr, "")
	}
	res = model.UserGetInfoRes{
		UserId:       user.Id,
		Name:         user.Name,
		Email:        user.Email,
		IsActive:     user.IsActive,
		Subscription: user.Subscription,
		Photo:        user.PhotoUrl,
		CreatedAt:    time.Time(user.CreatedAt).Format(consts.TimeLayout),
		LastLoginAt:  time.Time(user.LastLoginAt).Format(consts.TimeLayout),
	}
	return res, nil
}

func (u *userService) UserDelete(ctx *gin.Context) error {
	userId := ctx.GetInt64(consts.UserID)
	return u.ud.UserDelete(ctx, userId)
}

func (u *userService) UserUpdateEmail(ctx context.Context, userId int64, newEmail string) error {
	count, err := u.ud.UserVerifyEmail(ctx, newEmail)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.WithCode(ecode.UserExistErr, "")
	}
	if err := u.ud.UserUpdateColumn(ctx, userId, "email", newEmail); err != nil {
		return err
	}
	// 换邮箱后要重新验证
	return u.ud.UserUpdateColumn(ctx, userId, "is_active", false)
}

func (u *userService) UserUpdatePassword(ctx context.Context, userId int64, req model.UserUpdatePasswordReq) error {
	user, err := u.ud.UserGetById(ctx, userId)
	if err != nil {
		return err
	}
	if !security.ValidatePassword(req.OldPassword, user.Password) {
		return errors.WithCode(ecode.PasswordErr, "")
	}
	hashed, err := security.Encrypt(req.NewPassword)
	if err != nil {
		return err
	}
	return u.ud.UserUpdateColumn(ctx, userId, "password", hashed)
}

func (u *userService) UserUpdateName(ctx context.Context, userId int64, newName string) error {
	return u.ud.UserUpdateColumn(ctx, userId, "name", newName)
}

func (u *userService) UserUpdateSubscription(ctx context.Context, userId int64, newSubscription string) error {
	return u.ud.UserUpdateColumn(ctx, userId, "subscription", newSubscription)
}

func (u *userService) UserUpdatePhoto(ctx context.Context, userId int64, newPhoto string) error {
	return u.ud.UserUpdateColumn(ctx, userId, "photo_url", newPhoto)
}

func (u *userService) UserActiveGen(ctx context.Context, userId int64) error {
	user, err := u.ud.UserGetById(ctx, userId)
	if err != nil {
		return err
	}
	if user.IsActive {
		return nil
	}
	activeCode := utils.RandString(32)
	if err := u.rc.SetNX(ctx, activeCodePrefix+activeCode, userId, tempCodeTTL).Err(); err != nil {
		return err
	}
	return u.sender.SendActiveEmail(user.Email, user.Name, activeCode)
}

func (u *userService) UserActiveChange(ctx context.Context, activeCode string) error {
	userIdStr, err := u.rc.Get(ctx, activeCodePrefix+activeCode).Result()
	if err != nil {
		if err == redis.Nil {
			return errors.WithCode(ecode.ActiveErr, "")
		}
		return err
	}
	u.rc.Del(ctx, activeCodePrefix+activeCode)
	userId, err := strconv.ParseInt(userIdStr, 10, 64)
	if err != nil {
		return errors.WithCode(ecode.ActiveErr, "")
	}
	if err := u.ud.UserActivate(ctx, userId); err != nil {
		return err
	}
	user, err := u.ud.UserGetById(ctx, userId)
	if err == nil && user.Id != 0 {
		if err := u.sender.SendWelcomeEmail(user.Email, user.Name); err != nil {
			logger.Warnf("发送欢迎邮件失败: %v", err)
		}
	}
	return nil
}

func (u *userService) UserPasswordForget(ctx *gin.Context, req model.UserForgetReq) error {
	if !verification.VerifyCaptcha(ctx, req.Captcha) {
		return errors.WithCode(ecode.CaptchaErr, "")
	}
	user, err := u.ud.UserGetByEmail(ctx, req.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	// 邮箱不存在也返回成功，不给探测口子
	if user.Id == 0 {
		return nil
	}
	tempCode := utils.RandString(32)
	if err := u.rc.SetNX(ctx, tempCodePrefix+tempCode, user.Id, tempCodeTTL).Err(); err != nil {
		return err
	}
	return u.sender.SendResetEmail(user.Email, user.Name, tempCode)
}

func (u *userService) UserPasswordReset(ctx context.Context, req model.UserPasswordResetReq) error {
	userIdStr, err := u.rc.Get(ctx, tempCodePrefix+req.TempCode).Result()
	if err != nil {
		if err == redis.Nil {
			return errors.WithCode(ecode.ActiveErr, "temp code expired")
		}
		return err
	}
	u.rc.Del(ctx, tempCodePrefix+req.TempCode)
	userId, err := strconv.ParseInt(userIdStr, 10, 64)
	if err != nil {
		return errors.WithCode(ecode.ActiveErr, "temp code invalid")
	}
	hashed, err := security.Encrypt(req.NewPassword)
	if err != nil {
		return err
	}
	return u.ud.UserUpdateColumn(ctx, userId, "password", hashed)
}

func (u *userService) CaptchaGen(ctx context.Context) (res model.CaptchaRes, err error) {
	res.Image, err = verification.GenerateCaptcha(ctx)
	return res, err
}
