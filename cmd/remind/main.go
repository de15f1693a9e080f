package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/pacohlim/showroom-reservation/internal/config"
	reservationRepo "github.com/pacohlim/showroom-reservation/internal/infra/storage/reservation"
	"github.com/pacohlim/showroom-reservation/internal/integrations/alimtalk"
	"github.com/pacohlim/showroom-reservation/internal/integrations/mailer"
	"github.com/pacohlim/showroom-reservation/internal/service/notify"
	sendRemindersUC "github.com/pacohlim/showroom-reservation/internal/usecase/send_reminders"
	"github.com/pacohlim/showroom-reservation/pkg/logger"
)

// Одноразовый прогон рассылки напоминаний для внешнего cron.
// Встроенный планировщик сервера делает то же самое по расписанию;
// этот бинарник нужен, когда сервер работает с scheduler.enabled = false.
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reminder run...")

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	chatClient := alimtalk.NewClient(alimtalk.Config{
		BaseURL:   cfg.Alimtalk.URL,
		Timeout:   time.Duration(cfg.Alimtalk.Timeout) * time.Second,
		APIKey:    cfg.Alimtalk.APIKey,
		UserID:    cfg.Alimtalk.UserID,
		SenderKey: cfg.Alimtalk.SenderKey,
		Sender:    cfg.Alimtalk.Sender,
		Failover:  cfg.Alimtalk.Failover,
	}, log)
	mailClient := mailer.NewClient(mailer.Config{
		BaseURL: cfg.Mailer.URL,
		Timeout: time.Duration(cfg.Mailer.Timeout) * time.Second,
		APIKey:  cfg.Mailer.APIKey,
		From:    cfg.Mailer.From,
	}, log)

	reservationRepository := reservationRepo.NewRepository(db)

	notifyService := notify.NewService(
		reservationRepository,
		chatClient,
		mailClient,
		notify.Config{
			TemplateConfirm:   cfg.Alimtalk.TemplateConfirm,
			TemplateDayBefore: cfg.Alimtalk.TemplateDayBefore,
			TemplateDayOf:     cfg.Alimtalk.TemplateDayOf,
			AdminEmail:        cfg.Mailer.AdminTo,
		},
		log,
	)

	sendReminders := sendRemindersUC.NewUseCase(reservationRepository, notifyService, log)

	report, err := sendReminders.Execute(context.Background())
	if err != nil {
		log.Fatal("Reminder run failed: %v", err)
	}

	log.Info("Reminder run complete: day_before sent=%d/%d failed=%d, day_of sent=%d/%d failed=%d",
		report.DayBefore.Sent, report.DayBefore.Selected, report.DayBefore.Failed,
		report.DayOf.Sent, report.DayOf.Selected, report.DayOf.Failed)
}
