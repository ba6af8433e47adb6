package shift

import (
	"time"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

// IsEditable quyết định một ca trên lịch có được phép chỉnh sửa / xóa hay không:
// ca đã có lịch hẹn thì không được sửa (quy định nghiệp vụ, không phải giới hạn
// kỹ thuật), ca đã kết thúc cũng không. Hàm thuần, đánh giá lại mỗi lần gọi.
func IsEditable(event domain.ScheduleEvent, now time.Time) bool {
	if len(event.Patients) > 0 {
		return false
	}

	end, err := time.Parse(time.RFC3339, event.End)
	if err != nil {
		// thời gian kết thúc không đọc được thì coi như không sửa được
		return false
	}

	return !end.Before(now)
}
