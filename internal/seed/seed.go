// Package seed nhập dữ liệu bệnh viện thật từ file CSV vào cơ sở dữ liệu,
// dùng cho môi trường phát triển.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/repository"
)

// closedMarkers là các giá trị trong cột giờ làm việc được hiểu là ngày nghỉ.
var closedMarkers = map[string]bool{
	"":           true,
	"nghỉ":       true,
	"nghi":       true,
	"đóng cửa":   true,
	"00:00:00":   true,
	"0:00-0:00":  true,
	"00:00-0:00": true,
}

// SeedHospitalsFromCSV đọc file CSV dạng:
//
//	name,address,sunday,monday,tuesday,wednesday,thursday,friday,saturday
//
// trong đó mỗi cột thứ chứa "HH:MM:SS-HH:MM:SS" hoặc một giá trị đánh dấu
// ngày nghỉ. Mỗi dòng tạo một bệnh viện kèm bảng giờ làm việc.
func SeedHospitalsFromCSV(repo *repository.Repository, path string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("Mở file thất bại", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// bỏ qua dòng tiêu đề
	if _, err := reader.Read(); err != nil {
		slog.Error("Đọc tiêu đề thất bại", "error", err)
		return
	}

	count := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Error("Đọc dòng dữ liệu thất bại", "error", err)
			return
		}

		if len(record) != 9 {
			slog.Error("Dòng dữ liệu không đủ cột", "columns", len(record))
			continue
		}

		hospital := &domain.Hospital{
			Name:    strings.TrimSpace(record[0]),
			Address: strings.TrimSpace(record[1]),
		}

		table, err := parseWorkingHours(record[2:])
		if err != nil {
			slog.Error("Giờ làm việc không hợp lệ", "hospital", hospital.Name, "error", err)
			continue
		}

		if err := repo.CreateHospital(hospital); err != nil {
			slog.Error("Tạo bệnh viện thất bại", "hospital", hospital.Name, "error", err)
			continue
		}

		for i := range table {
			table[i].HospitalID = hospital.ID
		}

		if err := repo.ReplaceWorkingHours(hospital.ID, table); err != nil {
			slog.Error("Lưu giờ làm việc thất bại", "hospital", hospital.Name, "error", err)
			continue
		}

		count++
	}

	slog.Info("Nhập dữ liệu bệnh viện thành công", "count", count)
}

func parseWorkingHours(columns []string) ([]domain.WeekDayAvailability, error) {
	table := make([]domain.WeekDayAvailability, 0, 7)

	for day, column := range columns {
		row := domain.WeekDayAvailability{
			DayOfWeek:     day,
			DayOfWeekName: domain.DayOfWeekName(day),
			StartTime:     "00:00:00",
			EndTime:       "00:00:00",
			IsClosed:      true,
		}

		value := strings.ToLower(strings.TrimSpace(column))
		if !closedMarkers[value] {
			parts := strings.Split(value, "-")
			if len(parts) != 2 {
				return nil, fmt.Errorf("cột giờ làm việc không đúng định dạng: %q", column)
			}

			row.StartTime = strings.TrimSpace(parts[0])
			row.EndTime = strings.TrimSpace(parts[1])
			row.IsClosed = false
		}

		table = append(table, row)
	}

	return table, nil
}
