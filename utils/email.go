package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"gopkg.in/gomail.v2"
)

// TicketConfirmationData dữ liệu cho template email
type TicketConfirmationData struct {
	TicketID     string
	CustomerName string
	MovieName    string
	Showtime     string
	Seat         string
	Price        string
}

var ticketConfirmationTmpl = template.Must(template.New("ticket_confirmation").Parse(`<html><body>
<h2>Ticket confirmation #{{.TicketID}}</h2>
<p>Hi {{.CustomerName}}, thanks for your purchase.</p>
<ul>
<li>Movie: {{.MovieName}}</li>
<li>Showtime: {{.Showtime}}</li>
<li>Seat: {{.Seat}}</li>
<li>Price: ${{.Price}}</li>
</ul>
<p>Show the attached QR code at the entrance.</p>
</body></html>`))

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Mailer struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// BuildTicketConfirmation render nội dung email và đính kèm QR của vé
func (m *Mailer) BuildTicketConfirmation(to string, data TicketConfirmationData) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := ticketConfirmationTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render ticket email: %w", err)
	}

	qrBytes, err := GenerateTicketQRCode(data.TicketID, 256)
	if err != nil {
		return nil, fmt.Errorf("generate ticket qr: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Ticket confirmation #"+data.TicketID)
	msg.SetBody("text/html", body.String())

	filename := fmt.Sprintf("Ticket_%s.png", data.TicketID)
	msg.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(qrBytes))
		return err
	}))
	return msg, nil
}

func (m *Mailer) SendTicketConfirmation(to string, data TicketConfirmationData) error {
	msg, err := m.BuildTicketConfirmation(to, data)
	if err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send ticket email: %w", err)
	}
	return nil
}
