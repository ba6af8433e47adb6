package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/config"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/handler"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * Tạo logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * Nạp cấu hình
	 **********************************************/
	// file .env chỉ dùng khi phát triển, thiếu file không phải là lỗi
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Không nạp được cấu hình", "error", err)
		return
	}

	/**********************************************
	 * Kết nối cơ sở dữ liệu
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("Không tạo được pool kết nối cơ sở dữ liệu", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open chỉ tạo pool chứ chưa kết nối thật, phải ping để chắc chắn
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("Không kết nối được cơ sở dữ liệu", "error", err)
		return
	}

	/**********************************************
	 * Tạo repository
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * Đảm bảo tài khoản quản trị gốc tồn tại
	 **********************************************/
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Không băm được mật khẩu quản trị gốc", "error", err)
		return
	}
	initialAdmin := &domain.User{
		Username:     cfg.InitialAdmin.Username,
		PasswordHash: string(passwordHash),
		FullName:     cfg.InitialAdmin.FullName,
		Email:        cfg.InitialAdmin.Email,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.CreateUser(initialAdmin); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "users_username_key":
				// tài khoản quản trị gốc đã có sẵn trong cơ sở dữ liệu, bỏ qua
			default:
				logger.Error("Không tạo được tài khoản quản trị gốc", "error", err)
				return
			}
		default:
			logger.Error("Không tạo được tài khoản quản trị gốc", "error", err)
			return
		}
	}

	/**********************************************
	 * Kết nối rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("Không kết nối được rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("Không mở được channel rabbitmq", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		"email_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("Không khai báo được hàng đợi", "error", err)
		return
	}

	/**********************************************
	 * Kết nối redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * Tạo handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, ch, rdb)
	if err != nil {
		logger.Error("Không tạo được handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * Khởi động máy chủ HTTP
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Đang khởi động máy chủ...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Không khởi động được máy chủ", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("Đang tắt máy chủ...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Tắt máy chủ thất bại", slog.String("error", err.Error()))
	}
	logger.Info("Máy chủ đã tắt")
}
