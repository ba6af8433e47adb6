package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/config"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

func main() {
	/**********************************************
	 * Tạo logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * Nạp cấu hình
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Không nạp được cấu hình", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * Tạo client gửi mail
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("Không tạo được client gửi mail", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// thử kết nối tới máy chủ mail trước khi nhận việc
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("Không kết nối được máy chủ mail", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * Kết nối RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("Không kết nối được RabbitMQ", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("Không mở được channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"email_queue", // tên hàng đợi
		true,          // durable, sống qua các lần khởi động lại broker
		false,         // không auto-delete để hàng đợi tồn tại khi chưa có consumer
		false,         // không độc quyền
		false,         // chờ broker xác nhận
		nil,
	)
	if err != nil {
		logger.Error("Không khai báo được hàng đợi", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // để broker tự đặt tên consumer
		false, // không auto-ack, chỉ ack sau khi gửi mail thành công
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("Không đăng ký được consumer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("Nhận được mail trong hàng đợi", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("Giải mã mail thất bại", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("Không đặt được địa chỉ gửi", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("Không đặt được địa chỉ nhận", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				var templateFile, subject string
				switch mailMessage.Type {
				case "create_user":
					templateFile = "./templates/new_account_email.html"
					subject = "VietCare - Thông tin tài khoản"
				case "reset_password":
					templateFile = "./templates/reset_password_otp_email.html"
					subject = "VietCare - Đặt lại mật khẩu"
				case "change_email":
					templateFile = "./templates/change_email_email.html"
					subject = "VietCare - Đổi địa chỉ email"
				case "schedule_assigned":
					templateFile = "./templates/schedule_assigned_email.html"
					subject = "VietCare - Lịch làm việc mới"
				default:
					logger.Error("Loại mail không được hỗ trợ", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				tmpl, err := template.ParseFiles(templateFile)
				if err != nil {
					logger.Error("Không đọc được template mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
					logger.Error("Không dựng được nội dung mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				m.Subject(subject)

				if err := client.DialAndSend(m); err != nil {
					logger.Error("Gửi mail thất bại", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // trả mail về hàng đợi để thử lại
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("Đang chờ mail... (nhấn CTRL+C để thoát)")
	<-sigChan

	slog.Info("Đang tắt mail worker...")
	cancel()
	wg.Wait()
	slog.Info("Mail worker đã tắt")
}
