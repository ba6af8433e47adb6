package utils

import (
	"fmt"
	"time"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

// ValidateWeeklyAvailability kiểm tra bảng giờ làm việc theo tuần trước khi lưu:
// thứ trong khoảng 0..6, mỗi thứ chỉ có một dòng, và với ngày làm việc thì giờ
// đóng cửa phải sau giờ mở cửa.
func ValidateWeeklyAvailability(table []domain.WeekDayAvailability) error {
	seen := make(map[int]bool, len(table))

	for _, entry := range table {
		if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
			return fmt.Errorf("Thứ không hợp lệ: %d", entry.DayOfWeek)
		}
		if seen[entry.DayOfWeek] {
			return fmt.Errorf("Cấu hình cho %s bị trùng lặp", domain.DayOfWeekName(entry.DayOfWeek))
		}
		seen[entry.DayOfWeek] = true

		if entry.IsClosed {
			continue
		}

		startTime, err := time.Parse("15:04:05", entry.StartTime)
		if err != nil {
			return fmt.Errorf("Giờ mở cửa của %s sai định dạng", domain.DayOfWeekName(entry.DayOfWeek))
		}
		endTime, err := time.Parse("15:04:05", entry.EndTime)
		if err != nil {
			return fmt.Errorf("Giờ đóng cửa của %s sai định dạng", domain.DayOfWeekName(entry.DayOfWeek))
		}

		// cả hai mốc bằng "00:00:00" tương đương ngày nghỉ, không bắt lỗi thứ tự
		if entry.StartTime == "00:00:00" && entry.EndTime == "00:00:00" {
			continue
		}

		if !endTime.After(startTime) {
			return fmt.Errorf("Giờ đóng cửa của %s phải sau giờ mở cửa", domain.DayOfWeekName(entry.DayOfWeek))
		}
	}

	return nil
}
