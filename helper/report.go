package helper

import (
	"fmt"
	"log"
	"os"
	"restro_pos/constants"
	"restro_pos/database"
	"restro_pos/model"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/gomail.v2"
)

var reportScheduler *cron.Cron

// StartDailyReportScheduler mails each owner a summary of yesterday's sales
// every morning at 06:00. Disabled via REPORT_CRON_DISABLED for local runs.
func StartDailyReportScheduler() {
	if os.Getenv("REPORT_CRON_DISABLED") == "true" {
		log.Println("Daily report scheduler disabled")
		return
	}

	reportScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reportScheduler.AddFunc("0 6 * * *", SendDailySalesReports)
	if err != nil {
		log.Printf("failed to start report scheduler: %v", err)
		return
	}

	reportScheduler.Start()
	log.Println("Daily report scheduler started (06:00)")
}

func StopDailyReportScheduler() {
	if reportScheduler != nil {
		reportScheduler.Stop()
	}
}

func SendDailySalesReports() {
	log.Println("[CRON] SendDailySalesReports triggered")
	db := database.DB

	var owners []model.Owner
	if err := db.Find(&owners).Error; err != nil {
		log.Printf("failed to load owners for report: %v", err)
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	to := from.AddDate(0, 0, 1)

	for _, owner := range owners {
		if owner.Email == "" {
			continue
		}

		var revenue float64
		var count int64
		db.Model(&model.Order{}).
			Where("owner_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
				owner.ID, constants.ORDER_STATUS_COMPLETED, from, to).
			Count(&count)
		db.Model(&model.Order{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Where("owner_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
				owner.ID, constants.ORDER_STATUS_COMPLETED, from, to).
			Scan(&revenue)

		if count == 0 {
			continue
		}
		sendSalesReportMail(owner, from, count, revenue)
	}
}

func sendSalesReportMail(owner model.Owner, day time.Time, orders int64, revenue float64) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", owner.Email)
	m.SetHeader("Subject", fmt.Sprintf("Sales summary %s - %s", day.Format("02/01/2006"), owner.BusinessName))
	m.SetBody("text/html", fmt.Sprintf(
		"<h3>%s</h3><p>Orders completed: <b>%d</b></p><p>Revenue: <b>%.2f</b></p>",
		day.Format("Monday, 02 Jan 2006"), orders, revenue,
	))

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to send report mail to %s: %v", owner.Email, err)
	}
}
