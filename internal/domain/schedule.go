package domain

import "time"

const (
	TimeShiftMorning   int32 = 1
	TimeShiftAfternoon int32 = 2
)

type Room struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DepartmentName string `json:"departmentName"`
}

type Patient struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	DOB      string `json:"dob"` // "YYYY-MM-DD", có thể rỗng nếu dữ liệu thiếu
	Gender   string `json:"gender"`
}

type Appointment struct {
	ID           int64   `json:"id"`
	Note         string  `json:"note"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Patient      Patient `json:"patient"`
}

// ScheduleRecord là một ca làm việc cụ thể của một người trong một ngày,
// kèm các lịch hẹn đã gắn vào ca đó.
type ScheduleRecord struct {
	ID           int64         `json:"id"`
	UserID       int64         `json:"userID"`
	WorkDate     string        `json:"workDate"` // "YYYY-MM-DD"
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	TimeShift    int32         `json:"timeShift"` // 1 = ca sáng, 2 = ca chiều
	Room         Room          `json:"room"`
	Appointments []Appointment `json:"appointments"`
	CreatedAt    time.Time     `json:"createdAt"`
	Version      int32         `json:"-"`
}

type PatientSummary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Note         string  `json:"note"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
}

// ScheduleEvent là dữ liệu hiển thị trên lịch, sinh lại từ ScheduleRecord
// theo từng lần truy vấn, không lưu trữ.
type ScheduleEvent struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Start    string           `json:"start"` // RFC3339
	End      string           `json:"end"`   // RFC3339
	Status   string           `json:"status"`
	Type     string           `json:"type"` // "shift" hoặc "appointment"
	Patients []PatientSummary `json:"patients"`
}
