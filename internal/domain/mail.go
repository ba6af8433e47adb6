package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type ChangeEmailMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type ScheduleAssignedMailData struct {
	FullName  string   `json:"fullName"`
	Shifts    []string `json:"shifts"` // ví dụ: "Thứ hai - Ca sáng (08:00:00 - 12:00:00)"
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
}
