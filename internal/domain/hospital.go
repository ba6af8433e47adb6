package domain

import "time"

type Hospital struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// WeekDayAvailability là khung giờ làm việc của bệnh viện theo từng thứ trong tuần.
// DayOfWeek: 0 = Chủ nhật .. 6 = Thứ bảy. Mỗi (bệnh viện, thứ) chỉ có tối đa một dòng.
// StartTime/EndTime dạng "HH:MM:SS", chỉ có ý nghĩa khi IsClosed = false;
// cả hai bằng "00:00:00" được coi là nghỉ.
type WeekDayAvailability struct {
	HospitalID    int64  `json:"hospitalID"`
	DayOfWeek     int    `json:"dayOfWeek"`
	DayOfWeekName string `json:"dayOfWeekName"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	IsClosed      bool   `json:"isClosed"`
}

var dayOfWeekNames = [7]string{
	"Chủ nhật", "Thứ hai", "Thứ ba", "Thứ tư", "Thứ năm", "Thứ sáu", "Thứ bảy",
}

func DayOfWeekName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return "Không rõ"
	}
	return dayOfWeekNames[dayOfWeek]
}
