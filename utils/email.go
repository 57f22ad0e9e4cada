package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type BillEmailLine struct {
	Name     string
	Quantity int
	Amount   float64
}

type BillEmailData struct {
	OrderCode    string
	BusinessName string
	Lines        []BillEmailLine
	BaseAmount   float64
	TotalAmount  float64
	BillLink     string
}

var billMailTemplate = template.Must(template.New("bill").Parse(`
<h2>{{.BusinessName}}</h2>
<p>Order <b>{{.OrderCode}}</b></p>
<table>
{{range .Lines}}<tr><td>{{.Name}} x{{.Quantity}}</td><td>{{printf "%.2f" .Amount}}</td></tr>
{{end}}
</table>
<p>Subtotal: {{printf "%.2f" .BaseAmount}}</p>
<p><b>Total: {{printf "%.2f" .TotalAmount}}</b></p>
{{if .BillLink}}<p><a href="{{.BillLink}}">View your bill</a></p>{{end}}
`))

// SendBillEmail mails a rendered bill to the customer. Sent from a goroutine
// so the request never waits on SMTP.
func SendBillEmail(to string, data BillEmailData) {
	go func() {
		var body bytes.Buffer
		if err := billMailTemplate.Execute(&body, data); err != nil {
			log.Printf("failed to render bill mail: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Your bill for order "+data.OrderCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send bill mail to %s: %v", to, err)
		}
	}()
}
