package mailer

import (
	"fmt"
	"log"
	"time"

	"gopkg.in/gomail.v2"
)

// Sender คือ interface แคบ ๆ ที่ core เรียกใช้ ส่งไม่สำเร็จไม่ถือเป็น fatal
type Sender interface {
	Send(to, subject, body string) error
}

const sendTimeout = 10 * time.Second

type SMTPSender struct {
	dialer     *gomail.Dialer
	from       string
	adminInbox string
}

func NewSMTP(host string, port int, username, password, from, adminInbox string) *SMTPSender {
	return &SMTPSender{
		dialer:     gomail.NewDialer(host, port, username, password),
		from:       from,
		adminInbox: adminInbox,
	}
}

// Send ส่งเมลพร้อม BCC ไป admin inbox (ผู้รับไม่เห็น address ของ admin)
// gomail ไม่มี timeout ในตัว เลยครอบด้วย goroutine + timer กันค้าง
func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	if s.adminInbox != "" && s.adminInbox != to {
		m.SetHeader("Bcc", s.adminInbox)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("email sending failed | to=%s | subject=%s | err=%v", to, subject, err)
			return fmt.Errorf("send mail: %w", err)
		}
		log.Printf("email sent | to=%s | bcc=%s | subject=%s", to, s.adminInbox, subject)
		return nil
	case <-time.After(sendTimeout):
		log.Printf("email sending timed out | to=%s | subject=%s", to, subject)
		return fmt.Errorf("send mail: timeout after %s", sendTimeout)
	}
}
