package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/moqawil/moqawil_server/config"
)

type Service struct {
	cfg *config.EmailConfig
}

func NewService(cfg *config.EmailConfig) *Service {
	return &Service{cfg: cfg}
}

// SendWelcome is sent after registration, while the payment is still
// under review.
func (s *Service) SendWelcome(to, companyName string) error {
	subject := "مرحباً بكم في منصة مقاول"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.8; color: #333; direction: rtl;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #b45309;">أهلاً %s</h2>
        <p>شكراً لتسجيلكم في منصة مقاول.</p>
        <p>طلب الدفع الخاص بكم قيد المراجعة حالياً، وسيتم تفعيل اشتراككم فور تأكيد أكواد الشحن.</p>
        <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="color: #6b7280; font-size: 12px;">هذه الرسالة مرسلة تلقائياً، يرجى عدم الرد عليها.</p>
    </div>
</body>
</html>
`, companyName)

	return s.sendHTML(to, subject, body)
}

// SendSubscriptionActivated confirms the admin approved the payment.
func (s *Service) SendSubscriptionActivated(to, companyName, plan, endsAt string) error {
	subject := "تم تفعيل اشتراككم - منصة مقاول"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.8; color: #333; direction: rtl;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #15803d;">تم تفعيل الاشتراك</h2>
        <p>أهلاً %s،</p>
        <p>تم تأكيد الدفع وتفعيل خطة <strong>%s</strong> بنجاح.</p>
        <p>الاشتراك ساري حتى: %s</p>
        <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="color: #6b7280; font-size: 12px;">هذه الرسالة مرسلة تلقائياً، يرجى عدم الرد عليها.</p>
    </div>
</body>
</html>
`, companyName, plan, endsAt)

	return s.sendHTML(to, subject, body)
}

// SendPaymentRejected informs the tenant the submitted codes were refused.
func (s *Service) SendPaymentRejected(to, companyName string) error {
	subject := "تم رفض طلب الدفع - منصة مقاول"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.8; color: #333; direction: rtl;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #b91c1c;">تم رفض طلب الدفع</h2>
        <p>أهلاً %s،</p>
        <p>عذراً، لم نتمكن من تأكيد أكواد الشحن المرسلة. يمكنكم إعادة إرسال أكواد جديدة من صفحة الدفع، أو التواصل مع الدعم الفني.</p>
        <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="color: #6b7280; font-size: 12px;">هذه الرسالة مرسلة تلقائياً، يرجى عدم الرد عليها.</p>
    </div>
</body>
</html>
`, companyName)

	return s.sendHTML(to, subject, body)
}

func (s *Service) sendHTML(to, subject, body string) error {
	headers := make(map[string]string)
	headers["From"] = s.cfg.From
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}
