// Package shift chứa phần lõi tính toán ca làm việc: suy ra khung giờ ca sáng /
// ca chiều từ giờ làm việc của bệnh viện, sinh sự kiện hiển thị lịch, kiểm tra
// yêu cầu tạo / cập nhật lịch và quyết định một ca có được phép chỉnh sửa hay không.
// Toàn bộ package là hàm thuần, không I/O.
package shift

import (
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

const (
	KeyMorning   = "morning"
	KeyAfternoon = "afternoon"

	noon     = "12:00:00"
	zeroTime = "00:00:00"
)

// Window là khung giờ cụ thể của một ca trong ngày.
type Window struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Closed là khung giờ đánh dấu ca không hợp lệ (bệnh viện nghỉ).
var Closed = Window{StartTime: zeroTime, EndTime: zeroTime}

// IsClosed trả về true khi một trong hai mốc thời gian là "00:00:00".
func (w Window) IsClosed() bool {
	return w.StartTime == zeroTime || w.EndTime == zeroTime
}

type DayWindows struct {
	Morning   Window `json:"morning"`
	Afternoon Window `json:"afternoon"`
}

// TimeShiftOf ánh xạ khóa ca sang giá trị time_shift lưu trong cơ sở dữ liệu.
func TimeShiftOf(key string) int32 {
	if key == KeyMorning {
		return domain.TimeShiftMorning
	}
	return domain.TimeShiftAfternoon
}

// ByKey trả về khung giờ theo khóa ca; ok = false khi khóa không hợp lệ.
func (d DayWindows) ByKey(key string) (Window, bool) {
	switch key {
	case KeyMorning:
		return d.Morning, true
	case KeyAfternoon:
		return d.Afternoon, true
	default:
		return Window{}, false
	}
}

// Resolve suy ra khung giờ ca sáng và ca chiều của một thứ trong tuần từ bảng
// giờ làm việc. Ca sáng luôn là [giờ mở cửa, 12:00:00), ca chiều luôn là
// [12:00:00, giờ đóng cửa). Nếu thứ đó không có trong bảng, bệnh viện nghỉ,
// hoặc giờ mở / đóng cửa là "00:00:00" thì cả hai ca đều là Closed.
//
// Lưu ý: hàm không kiểm tra giờ mở cửa < 12:00 < giờ đóng cửa. Nếu bệnh viện
// mở cửa sau buổi trưa thì ca sáng sẽ có start > end; hành vi này giữ nguyên
// theo hệ thống gốc, chưa có quyết định nghiệp vụ về cách xử lý.
func Resolve(dayOfWeek int, table []domain.WeekDayAvailability) DayWindows {
	var entry *domain.WeekDayAvailability
	for i := range table {
		if table[i].DayOfWeek == dayOfWeek {
			entry = &table[i]
			break
		}
	}

	if entry == nil || entry.IsClosed || entry.StartTime == zeroTime || entry.EndTime == zeroTime {
		return DayWindows{Morning: Closed, Afternoon: Closed}
	}

	return DayWindows{
		Morning:   Window{StartTime: entry.StartTime, EndTime: noon},
		Afternoon: Window{StartTime: noon, EndTime: entry.EndTime},
	}
}
