package shift

import (
	"strings"
	"time"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

const (
	StatusDone          = "Đã khám"
	StatusNotStarted    = "Chưa bắt đầu"
	StatusInProgress    = "Đang khám"
	StatusEmptyPast     = "Ca rỗng (đã qua)"
	StatusEmptyUpcoming = "Ca rỗng (sắp tới)"
	StatusEmptyWaiting  = "Ca rỗng (đang chờ)"

	TypeShift       = "shift"
	TypeAppointment = "appointment"

	TitleMorning   = "Ca sáng"
	TitleAfternoon = "Ca chiều"

	unknownLabel = "Không rõ"
)

// Project chuyển danh sách ca làm việc thô thành sự kiện hiển thị lịch.
// Mỗi bản ghi cho ra đúng một sự kiện, giữ nguyên thứ tự. Dữ liệu thiếu hoặc
// sai định dạng được thay bằng giá trị mặc định thay vì làm hỏng cả phép chiếu.
func Project(records []domain.ScheduleRecord, now time.Time) []domain.ScheduleEvent {
	events := make([]domain.ScheduleEvent, 0, len(records))

	for _, rec := range records {
		start := combineDateTime(rec.WorkDate, rec.StartTime, now.Location())
		end := combineDateTime(rec.WorkDate, rec.EndTime, now.Location())

		hasAppointments := len(rec.Appointments) > 0

		eventType := TypeShift
		if hasAppointments {
			eventType = TypeAppointment
		}

		title := TitleAfternoon
		if rec.TimeShift == domain.TimeShiftMorning {
			title = TitleMorning
		}

		patients := make([]domain.PatientSummary, 0, len(rec.Appointments))
		for _, appt := range rec.Appointments {
			patients = append(patients, domain.PatientSummary{
				ID:           appt.Patient.ID,
				Name:         patientName(appt.Patient.FullName),
				Age:          ageAt(appt.Patient.DOB, now),
				Gender:       GenderLabel(appt.Patient.Gender),
				Note:         appt.Note,
				ServiceName:  appt.ServiceName,
				ServicePrice: appt.ServicePrice,
			})
		}

		events = append(events, domain.ScheduleEvent{
			ID:       rec.ID,
			Title:    title,
			Start:    formatInstant(start),
			End:      formatInstant(end),
			Status:   blockStatus(hasAppointments, now, start, end),
			Type:     eventType,
			Patients: patients,
		})
	}

	return events
}

// blockStatus là hàm toàn phần trên (hasAppointments, now so với start, now so
// với end): mỗi tổ hợp cho ra đúng một trong sáu nhãn.
func blockStatus(hasAppointments bool, now, start, end time.Time) string {
	switch {
	case hasAppointments && now.After(end):
		return StatusDone
	case hasAppointments && now.Before(start):
		return StatusNotStarted
	case hasAppointments:
		return StatusInProgress
	case now.After(end):
		return StatusEmptyPast
	case now.Before(start):
		return StatusEmptyUpcoming
	default:
		return StatusEmptyWaiting
	}
}

// combineDateTime ghép ngày làm việc với giờ trong ngày. Trả về zero time khi
// dữ liệu sai định dạng; khi đó trạng thái rơi về nhánh "đã qua".
func combineDateTime(workDate, clock string, loc *time.Location) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", workDate+" "+clock, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func patientName(fullName string) string {
	if fullName == "" {
		return unknownLabel
	}
	return fullName
}

// ageAt tính tuổi tròn năm tại thời điểm now; 0 khi ngày sinh thiếu hoặc sai.
func ageAt(dob string, now time.Time) int {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}

	age := now.Year() - born.Year()
	if now.YearDay() < born.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// GenderLabel chuyển mã giới tính từ backend thành nhãn hiển thị.
func GenderLabel(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "nam", "m", "1":
		return "Nam"
	case "female", "nữ", "nu", "f", "2":
		return "Nữ"
	default:
		return unknownLabel
	}
}
