package mail

import (
	"errors"

	emailverifier "github.com/AfterShip/email-verifier"
)

type Verifier struct {
	verifier *emailverifier.Verifier
}

func NewVerifier(fromEmail string) *Verifier {
	return &Verifier{
		verifier: emailverifier.NewVerifier().EnableSMTPCheck().DisableCatchAllCheck().FromEmail(fromEmail),
	}
}

// VerifierEmail 注册前检查邮箱是否真实可达
func (v *Verifier) VerifierEmail(email string) error {
	ret, err := v.verifier.Verify(email)
	if err != nil {
		return err
	}
	if !ret.Syntax.Valid {
		return errors.New("email address syntax is invalid")
	}
	if ret.SMTP != nil && !ret.SMTP.Deliverable {
		return errors.New("email address not deliverable")
	}
	return nil
}
