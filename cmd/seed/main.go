package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/config"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/repository"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/seed"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/shift"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var hospitalID int64
	var csvPath string

	flag.IntVar(&op, "op", 0, "thao tác cần chạy (1: tạo bệnh viện ngẫu nhiên, 2: tạo nhân viên ngẫu nhiên, 3: tạo lịch làm việc ngẫu nhiên, 4: nhập bệnh viện từ CSV)")
	flag.IntVar(&n, "n", 5, "số bản ghi cần tạo")
	flag.Int64Var(&hospitalID, "hospital-id", 0, "ID bệnh viện dùng cho thao tác 2 và 3")
	flag.StringVar(&csvPath, "csv", "./internal/seed/data/hospitals.csv", "đường dẫn file CSV cho thao tác 4")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Không nạp được cấu hình", slog.String("error", err.Error()))
		os.Exit(1)
	}

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

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("Chưa chỉ định thao tác")
	case 1:
		seedHospitals(repo, n)
	case 2:
		seedUsers(cfg, repo, n, hospitalID)
	case 3:
		seedSchedules(repo, n, hospitalID)
	case 4:
		seed.SeedHospitalsFromCSV(repo, csvPath)
	default:
		slog.Error("Thao tác không hợp lệ")
	}
}

func seedHospitals(repo *repository.Repository, n int) {
	if n <= 0 {
		slog.Error("Vui lòng nhập số bệnh viện hợp lệ")
		return
	}

	cnt := 0
	for i := 0; i < n; i++ {
		hospital := utils.GenerateRandomHospital()
		if err := repo.CreateHospital(hospital); err != nil {
			slog.Error("Không tạo được bệnh viện", slog.String("error", err.Error()))
			continue
		}

		table := utils.GenerateRandomWorkingHours(hospital.ID)
		if err := repo.ReplaceWorkingHours(hospital.ID, table); err != nil {
			slog.Error("Không lưu được giờ làm việc", slog.String("error", err.Error()))
			continue
		}

		// mỗi bệnh viện kèm vài phòng khám
		for j := 0; j < 3; j++ {
			room := utils.GenerateRandomRoom()
			if err := repo.CreateRoom(hospital.ID, room); err != nil {
				slog.Error("Không tạo được phòng", slog.String("error", err.Error()))
			}
		}

		cnt++
	}

	slog.Info("Tạo bệnh viện thành công", slog.Int("count", cnt))
}

func seedUsers(cfg *config.Config, repo *repository.Repository, n int, hospitalID int64) {
	if n <= 0 {
		slog.Error("Vui lòng nhập số nhân viên hợp lệ")
		return
	}
	if hospitalID <= 0 {
		slog.Error("Vui lòng nhập ID bệnh viện hợp lệ")
		return
	}

	cnt := 0
	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain, hospitalID)
		if err != nil {
			slog.Error("Không sinh được nhân viên ngẫu nhiên", slog.String("error", err.Error()))
			continue
		}

		if err := repo.CreateUser(user); err != nil {
			slog.Error("Không tạo được nhân viên", slog.String("error", err.Error()))
			continue
		}

		cnt++
	}

	slog.Info("Tạo nhân viên thành công", slog.Int("count", cnt))
}

// seedSchedules gán ngẫu nhiên ca sáng / ca chiều cho nhân viên của một bệnh
// viện trong n ngày kế tiếp, chỉ vào những ngày bệnh viện mở cửa.
func seedSchedules(repo *repository.Repository, n int, hospitalID int64) {
	if n <= 0 {
		slog.Error("Vui lòng nhập số ngày hợp lệ")
		return
	}
	if hospitalID <= 0 {
		slog.Error("Vui lòng nhập ID bệnh viện hợp lệ")
		return
	}

	table, err := repo.GetWorkingHours(hospitalID)
	if err != nil {
		slog.Error("Không đọc được giờ làm việc", slog.String("error", err.Error()))
		return
	}

	users, err := repo.GetAllUsers()
	if err != nil {
		slog.Error("Không đọc được danh sách nhân viên", slog.String("error", err.Error()))
		return
	}

	rooms, err := repo.GetRoomsByHospital(hospitalID)
	if err != nil {
		slog.Error("Không đọc được danh sách phòng", slog.String("error", err.Error()))
		return
	}

	staff := make([]*domain.User, 0, len(users))
	for _, user := range users {
		if user.HospitalID == hospitalID && user.Role != domain.RoleAdmin {
			staff = append(staff, user)
		}
	}

	if len(staff) == 0 || len(rooms) == 0 {
		slog.Error("Bệnh viện chưa có nhân viên hoặc phòng để xếp lịch")
		return
	}

	cnt := 0
	today := time.Now()
	for day := 0; day < n; day++ {
		date := today.AddDate(0, 0, day)
		windows := shift.Resolve(int(date.Weekday()), table)

		for _, key := range []string{shift.KeyMorning, shift.KeyAfternoon} {
			window, _ := windows.ByKey(key)
			if window.IsClosed() {
				continue
			}

			user := staff[rand.Intn(len(staff))]
			room := rooms[rand.Intn(len(rooms))]

			schedule := &domain.ScheduleRecord{
				UserID:    user.ID,
				WorkDate:  date.Format("2006-01-02"),
				StartTime: window.StartTime,
				EndTime:   window.EndTime,
				TimeShift: shift.TimeShiftOf(key),
				Room:      domain.Room{ID: room.ID},
			}

			if err := repo.CreateSchedule(schedule); err != nil {
				slog.Error("Không tạo được ca làm việc", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}
	}

	slog.Info("Tạo lịch làm việc thành công", slog.Int("count", cnt))
}
