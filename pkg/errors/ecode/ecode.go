package ecode

// 错误码定义，0表示成功
const (
	Success = 0

	Unknown         = 10001
	ValidateErr     = 10002
	NotFoundErr     = 10003
	RequireAuthErr  = 10004
	UserLoginErr    = 10005
	PasswordErr     = 10006
	CaptchaErr      = 10007
	ActiveErr       = 10008
	UserExistErr    = 10009
	UserNotFoundErr = 10010
	EmailErr        = 10011

	// 券商桥接相关
	BrokerLinkErr = 20001
	BrokerSyncErr = 20002
	IngestErr     = 20003
)

var messages = map[int]string{
	Success:         "OK",
	Unknown:         "Internal server error",
	ValidateErr:     "Validation failed",
	NotFoundErr:     "Resource not found",
	RequireAuthErr:  "Authentication required",
	UserLoginErr:    "Login failed",
	PasswordErr:     "Password incorrect",
	CaptchaErr:      "Captcha incorrect",
	ActiveErr:       "Account activation failed",
	UserExistErr:    "Email already registered",
	UserNotFoundErr: "User not found",
	EmailErr:        "Email address unreachable",
	BrokerLinkErr:   "Broker account link failed",
	BrokerSyncErr:   "Broker sync failed",
	IngestErr:       "Journal ingest failed",
}

// Message 根据错误码取默认文案
func Message(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[Unknown]
}
