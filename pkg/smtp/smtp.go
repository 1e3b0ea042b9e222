package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

// ItfSmtp sends the post-published notification mail. Enabled reports
// whether SMTP credentials are configured; callers skip sending otherwise.
type ItfSmtp interface {
	Enabled() bool
	SendPostPublished(authorEmail string, authorName string, title string, category string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	var auth smtpPkg.Auth
	if mail != "" {
		auth = smtpPkg.PlainAuth("", mail, password, host)
	}

	return &smtp{
		auth: auth,
		mail: mail,
		host: host,
		addr: host + ":" + port,
	}
}

func (s *smtp) Enabled() bool {
	return s.mail != ""
}

func (s *smtp) SendPostPublished(authorEmail string, authorName string, title string, category string) error {
	to := []string{authorEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Your post has been published\r\n\r\nHello %s, your post %q (category: %s) has been published. Thanks for contributing to the blog!",
		authorEmail, authorName, title, category))

	if err := smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
