package shift

import (
	"errors"
	"fmt"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

// ErrMissingSelection được trả về khi yêu cầu thiếu ngày hoặc ca làm việc,
// trước cả khi tra bảng giờ làm việc.
var ErrMissingSelection = errors.New("Vui lòng chọn ngày và ca làm việc")

// KeyLabel trả về nhãn hiển thị của một khóa ca.
func KeyLabel(key string) string {
	switch key {
	case KeyMorning:
		return TitleMorning
	case KeyAfternoon:
		return TitleAfternoon
	default:
		return key
	}
}

// ValidateSingle kiểm tra một yêu cầu tạo / cập nhật lịch cho một thứ trong
// tuần. Khi hợp lệ, trả về khung giờ cụ thể theo đúng thứ tự của shiftKeys;
// caller dùng chính các khung giờ này làm payload ghi xuống backend, nhờ đó
// giờ hiển thị và giờ được lưu không bao giờ lệch nhau. Khi bị từ chối, yêu
// cầu không được phép chạm tới tầng lưu trữ.
func ValidateSingle(dayOfWeek int, shiftKeys []string, table []domain.WeekDayAvailability) ([]Window, error) {
	if len(shiftKeys) == 0 || dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrMissingSelection
	}

	windows := Resolve(dayOfWeek, table)

	result := make([]Window, 0, len(shiftKeys))
	for _, key := range shiftKeys {
		w, ok := windows.ByKey(key)
		if !ok {
			return nil, fmt.Errorf("Ca làm việc không hợp lệ: %s", key)
		}
		if w.IsClosed() {
			return nil, fmt.Errorf(
				"Bệnh viện không làm việc hoặc giờ làm việc không hợp lệ vào %s (%s)",
				domain.DayOfWeekName(dayOfWeek), KeyLabel(key),
			)
		}
		result = append(result, w)
	}

	return result, nil
}

// ValidateBulk áp dụng cùng một phép kiểm tra cho từng thứ trong daysOfWeek.
// Chỉ cần một thứ không hợp lệ là toàn bộ yêu cầu bị từ chối, kèm tên thứ bị
// lỗi trong thông báo; không có chuyện ghi một phần.
func ValidateBulk(daysOfWeek []int, shiftKeys []string, table []domain.WeekDayAvailability) (map[int][]Window, error) {
	if len(daysOfWeek) == 0 || len(shiftKeys) == 0 {
		return nil, ErrMissingSelection
	}

	result := make(map[int][]Window, len(daysOfWeek))
	for _, day := range daysOfWeek {
		windows, err := ValidateSingle(day, shiftKeys, table)
		if err != nil {
			return nil, err
		}
		result[day] = windows
	}

	return result, nil
}
