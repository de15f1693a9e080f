package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/pacohlim/showroom-reservation/internal/api/handlers"
	cancelReservationHandler "github.com/pacohlim/showroom-reservation/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/pacohlim/showroom-reservation/internal/api/handlers/create_reservation"
	getCalendarHandler "github.com/pacohlim/showroom-reservation/internal/api/handlers/get_calendar"
	getTimesHandler "github.com/pacohlim/showroom-reservation/internal/api/handlers/get_times"
	healthHandler "github.com/pacohlim/showroom-reservation/internal/api/handlers/health"
	myReservationsHandler "github.com/pacohlim/showroom-reservation/internal/api/handlers/my_reservations"
	"github.com/pacohlim/showroom-reservation/internal/api/middleware"
	"github.com/pacohlim/showroom-reservation/internal/config"
	"github.com/pacohlim/showroom-reservation/internal/infra/migrations"
	reservationRepo "github.com/pacohlim/showroom-reservation/internal/infra/storage/reservation"
	"github.com/pacohlim/showroom-reservation/internal/integrations/alimtalk"
	"github.com/pacohlim/showroom-reservation/internal/integrations/mailer"
	"github.com/pacohlim/showroom-reservation/internal/service/notify"
	cancelReservationUC "github.com/pacohlim/showroom-reservation/internal/usecase/cancel_reservation"
	createReservationUC "github.com/pacohlim/showroom-reservation/internal/usecase/create_reservation"
	getCalendarUC "github.com/pacohlim/showroom-reservation/internal/usecase/get_calendar"
	getTimesUC "github.com/pacohlim/showroom-reservation/internal/usecase/get_times"
	myReservationsUC "github.com/pacohlim/showroom-reservation/internal/usecase/my_reservations"
	sendRemindersUC "github.com/pacohlim/showroom-reservation/internal/usecase/send_reminders"
	"github.com/pacohlim/showroom-reservation/pkg/dbmetrics"
	"github.com/pacohlim/showroom-reservation/pkg/logger"
	"github.com/pacohlim/showroom-reservation/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting showroom-reservation...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Накатываем миграции
	if err := migrations.Apply(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied")

	// Инициализируем интеграционных клиентов
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
	log.Info("Integration clients initialized (Alimtalk=%s timeout=%ds, Mailer=%s timeout=%ds)",
		cfg.Alimtalk.URL, cfg.Alimtalk.Timeout, cfg.Mailer.URL, cfg.Mailer.Timeout)

	// Инициализируем репозиторий (с метриками или без)
	var reservationRepository *reservationRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
	}

	// Инициализируем диспетчер уведомлений
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

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(reservationRepository, notifyService, log)
	getTimesUseCase := getTimesUC.NewUseCase(reservationRepository, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(reservationRepository, log)
	myReservationsUseCase := myReservationsUC.NewUseCase(reservationRepository, log)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(reservationRepository, log)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(reservationRepository, notifyService, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getTimes := getTimesHandler.NewHandler(getTimesUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	myReservations := myReservationsHandler.NewHandler(myReservationsUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Неизвестный путь или метод: 404 с тем же телом, что у /cancel
	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, "not found")
	})
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/times", getTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reserve", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/my", myReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Запускаем планировщик напоминаний (если включен)
	var reminderCron *cron.Cron
	if cfg.Scheduler.Enabled {
		reminderCron = cron.New()
		_, err := reminderCron.AddFunc(cfg.Scheduler.Spec, func() {
			report, err := sendRemindersUseCase.Execute(context.Background())
			if err != nil {
				log.Error("Reminder tick failed: %v", err)
				return
			}
			log.Info("Reminder tick: day_before sent=%d/%d failed=%d, day_of sent=%d/%d failed=%d",
				report.DayBefore.Sent, report.DayBefore.Selected, report.DayBefore.Failed,
				report.DayOf.Sent, report.DayOf.Selected, report.DayOf.Failed)
		})
		if err != nil {
			log.Fatal("Failed to schedule reminders: %v", err)
		}
		reminderCron.Start()
		log.Info("Reminder scheduler started (spec=%q)", cfg.Scheduler.Spec)
	}

	// Создаем HTTP сервер. Recover ловит паники обработчиков,
	// CORS оборачивает весь роутер, чтобы заголовки были и на 404
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(middleware.Recover(log)(r)),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем планировщик напоминаний
	if reminderCron != nil {
		reminderCron.Stop()
		log.Info("Reminder scheduler stopped")
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
