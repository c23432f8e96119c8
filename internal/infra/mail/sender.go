package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

const digestTemplate = `<h2>Call plan for {{.Date}}</h2>
<p>{{len .Items}} contact(s) on today's list.</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>Name</th><th>Phone</th><th>Stage</th><th>Reason</th><th>Last summary</th></tr>
  {{range .Items}}
  <tr>
    <td>{{.Name}}{{if .ContactPerson}} ({{.ContactPerson}}){{end}}</td>
    <td>{{.Phone}}</td>
    <td>{{.DealStage}}</td>
    <td>{{.Reason}}</td>
    <td>{{.LastCallSummary}}</td>
  </tr>
  {{end}}
</table>`

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendPlanDigest manda o plano do dia por email (digest matinal do cron).
func (s *EmailSender) SendPlanDigest(to, date string, items []entity.CallPlanItem) error {
	t, err := template.New("digest").Parse(digestTemplate)
	if err != nil {
		return fmt.Errorf("erro ao montar template do digest: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, PlanDigestData{Date: date, Items: items}); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Call plan %s (%d contacts) 📞", date, len(items)))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
