package mail

import (
	"fmt"

	gomail "github.com/go-mail/mail"

	"tradevault/conf"
)

// Sender smtp邮件发送器，欢迎邮件/激活邮件/密码找回都走这里
type Sender struct {
	cfg conf.EmailConfig
}

func NewSender(cfg conf.EmailConfig) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.StartTLSPolicy = gomail.MandatoryStartTLS
	return d.DialAndSend(m)
}

// SendActiveEmail 发送激活邮件，链接带上临时激活码
func (s *Sender) SendActiveEmail(to, nickname, activeCode string) error {
	link := fmt.Sprintf("%s/auth/active?active_code=%s", conf.AppConfig.ExternalURL, activeCode)
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Welcome to %s. Click the link below to activate your account:</p>
<p><a href="%s">%s</a></p>`, nickname, conf.AppConfig.AppName, link, link)
	return s.send(to, "Activate your account", body)
}

// SendWelcomeEmail 激活完成后发送欢迎邮件
func (s *Sender) SendWelcomeEmail(to, nickname string) error {
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your account is verified. Start journaling your trades and review your setups any time.</p>`, nickname)
	return s.send(to, "Welcome to "+conf.AppConfig.AppName, body)
}

// SendResetEmail 发送密码找回邮件
func (s *Sender) SendResetEmail(to, nickname, tempCode string) error {
	link := fmt.Sprintf("%s/auth/resetpassword?temp_code=%s", conf.AppConfig.ExternalURL, tempCode)
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your password. Use the link below within 20 minutes:</p>
<p><a href="%s">%s</a></p>`, nickname, link, link)
	return s.send(to, "Reset your password", body)
}
