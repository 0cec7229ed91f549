package model

// 用户注册的参数
type UserRegisterReq struct {
	Name         string `json:"name" binding:"required" label:"用户名称"`
	Email        string `json:"email" binding:"required,email" label:"邮箱地址"`
	Password     string `json:"password" binding:"required,min=8" label:"密码"`
	Subscription string `json:"subscription" label:"订阅等级"`
	Captcha      string `json:"captcha" binding:"required" label:"验证码"`
}

type UserRegisterRes struct {
	UserId int64 `json:"user_id,string"`
}

// 用户登陆发起请求的参数
type UserLoginReq struct {
	Email    string `json:"email" binding:"required,email" label:"邮箱地址"`
	Password string `json:"password" binding:"required" label:"密码"`
	Captcha  string `json:"captcha" binding:"required" label:"验证码"`
}

// 用户登陆成功响应的结构体
type UserLoginRes struct {
	Token   string `json:"token"`
	Timeout int64  `json:"timeout"`
}

// 用户的token状态
type UserAuthStatusRes struct {
	// 是否无效
	IsInvalid bool `json:"is_invalid"`
}

type UserGetInfoRes struct {
	UserId       int64  `json:"user_id,string"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsActive     bool   `json:"is_active"` // 邮箱是否已验证
	Subscription string `json:"subscription"`
	Photo        string `json:"photo,omitempty"`
	CreatedAt    string `json:"creation_time"`
	LastLoginAt  string `json:"last_sign_in_time"`
}

type UserUpdateEmailReq struct {
	NewEmail string `json:"new_email" binding:"required,email" label:"新邮箱"`
}

type UserUpdatePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required" label:"旧密码"`
	NewPassword string `json:"new_password" binding:"required,min=8" label:"新密码"`
}

type UserPasswordResetReq struct {
	TempCode    string `json:"temp_code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UserForgetReq struct {
	Email   string `json:"email" binding:"required,email" label:"邮箱地址"`
	Captcha string `json:"captcha" binding:"required" label:"验证码"`
}

type UserUpdateNameReq struct {
	NewName string `json:"new_name" binding:"required" label:"用户名称"`
}

type UserUpdateSubscriptionReq struct {
	NewSubscription string `json:"new_subscription" binding:"required,oneof=free pro" label:"订阅等级"`
}

type UserUpdatePhotoReq struct {
	NewPhoto string `json:"new_photo" binding:"required" label:"头像地址"`
}

type UserActiveReq struct {
	ActiveCode string `form:"active_code" json:"active_code" binding:"required"`
}

type CaptchaRes struct {
	Image string `json:"image"` // 验证码图片的base64
}
