package helper

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"sort"
	"strings"

	"cinema_admin/config"
	"cinema_admin/schedule"

	"gopkg.in/gomail.v2"
)

var batchMailTmpl = template.Must(template.New("batch").Parse(`
<h3>Đã tạo {{.Total}} suất chiếu cho phim "{{.Movie}}"</h3>
<p>Người tạo: {{.Username}}</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Ngày</th><th>Số suất</th><th>Giờ chiếu</th></tr>
{{range .Days}}<tr><td>{{.Date}}</td><td>{{.Count}}</td><td>{{.Times}}</td></tr>
{{end}}</table>
`))

type dayCount struct {
	Date  string
	Count int
	Times string
}

type BatchSummary struct {
	Username string
	Movie    string
	Total    int
	Days     []dayCount
}

func SummarizeBatch(username string, movie schedule.Movie, candidates []schedule.Candidate) BatchSummary {
	counts := map[string]int{}
	clocks := map[string]map[int]bool{}
	for _, c := range candidates {
		counts[c.Date]++
		if clocks[c.Date] == nil {
			clocks[c.Date] = map[int]bool{}
		}
		clocks[c.Date][c.StartTime.Hour()*60+c.StartTime.Minute()] = true
	}
	days := make([]dayCount, 0, len(counts))
	for d, n := range counts {
		minutes := make([]int, 0, len(clocks[d]))
		for m := range clocks[d] {
			minutes = append(minutes, m)
		}
		sort.Ints(minutes)
		times := make([]string, 0, len(minutes))
		for _, m := range minutes {
			times = append(times, schedule.FormatClock(m))
		}
		days = append(days, dayCount{Date: d, Count: n, Times: strings.Join(times, ", ")})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return BatchSummary{Username: username, Movie: movie.Title, Total: len(candidates), Days: days}
}

func RenderBatchSummary(s BatchSummary) (string, error) {
	var body bytes.Buffer
	if err := batchMailTmpl.Execute(&body, s); err != nil {
		return "", err
	}
	return body.String(), nil
}

// Notifier gửi email thông báo cho quản lý. Nil nghĩa là tắt.
type Notifier struct {
	dialer *gomail.Dialer
	from   string
	to     []string
}

func NewNotifierFromConfig() *Notifier {
	host := config.Config("SMTP_HOST")
	to := config.Config("NOTIFY_TO")
	if host == "" || to == "" {
		return nil
	}
	recipients := []string{}
	for _, addr := range strings.Split(to, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return &Notifier{
		dialer: gomail.NewDialer(host, config.ConfigInt("SMTP_PORT", 587), config.Config("SMTP_USER"), config.Config("SMTP_PASSWORD")),
		from:   config.ConfigDefault("SMTP_FROM", "CinemaPro <cinema_hub@gmail.com>"),
		to:     recipients,
	}
}

func (n *Notifier) BatchCreated(username string, movie schedule.Movie, candidates []schedule.Candidate) error {
	if n == nil || len(candidates) == 0 {
		return nil
	}
	summary := SummarizeBatch(username, movie, candidates)
	html, err := RenderBatchSummary(summary)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to...)
	m.SetHeader("Subject", fmt.Sprintf("Lịch chiếu mới - %s (%d suất)", movie.Title, summary.Total))
	m.SetBody("text/html", html)

	if err := n.dialer.DialAndSend(m); err != nil {
		return err
	}
	log.Printf("Đã gửi thông báo lịch chiếu %q tới %s", movie.Title, strings.Join(n.to, ", "))
	return nil
}
