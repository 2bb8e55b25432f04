package helper

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	catalogCron  *cron.Cron
	roomSchedule gocron.Scheduler
)

// StartCatalogSchedulers: phim làm mới theo spec cron, phòng làm mới hằng ngày 00:05
func StartCatalogSchedulers(catalog *Catalog, movieSpec string, loc *time.Location) error {
	if catalog == nil || catalog.Redis == nil {
		log.Println("Không có redis, bỏ qua scheduler cache")
		return nil
	}
	if catalog.ServiceToken == "" {
		log.Println("Thiếu BACKEND_SERVICE_TOKEN, bỏ qua scheduler cache")
		return nil
	}

	catalogCron = cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := catalogCron.AddFunc(movieSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := catalog.RefreshMovies(ctx)
		if err != nil {
			log.Printf("[CRON] Lỗi làm mới danh sách phim: %v", err)
			return
		}
		log.Printf("[CRON] Đã làm mới %d phim", n)
	}); err != nil {
		return err
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return err
	}
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			n, err := catalog.RefreshRooms(ctx)
			if err != nil {
				log.Printf("[CRON] Lỗi làm mới phòng: %v", err)
				return
			}
			log.Printf("[CRON] Đã làm mới %d phòng", n)
		}),
	)
	if err != nil {
		return err
	}
	roomSchedule = s

	catalogCron.Start()
	roomSchedule.Start()
	log.Printf("Scheduler cache đã khởi động (phim: %s, phòng: 00:05)", movieSpec)
	return nil
}

// Dừng scheduler khi tắt server
func StopCatalogSchedulers() {
	if catalogCron != nil {
		<-catalogCron.Stop().Done()
	}
	if roomSchedule != nil {
		if err := roomSchedule.Shutdown(); err != nil {
			log.Printf("Lỗi dừng scheduler phòng: %v", err)
		}
	}
	log.Println("Scheduler cache đã dừng")
}
