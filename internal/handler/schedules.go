package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/shift"
)

const workDateLayout = "2006-01-02"

func (h *Handler) GetScheduleEvents(w http.ResponseWriter, r *http.Request) {
	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)

	var req struct {
		UserID int64  `validate:"required"`
		From   string `validate:"required,datetime=2006-01-02"`
		To     string `validate:"required,datetime=2006-01-02"`
	}

	req.UserID, _ = strconv.ParseInt(r.URL.Query().Get("userID"), 10, 64)
	req.From = r.URL.Query().Get("from")
	req.To = r.URL.Query().Get("to")

	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	records, err := h.repository.GetSchedulesByUserAndRange(hospital.ID, req.UserID, req.From, req.To)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// projector nhận slice giá trị để không sửa nhầm dữ liệu gốc
	values := make([]domain.ScheduleRecord, 0, len(records))
	for _, record := range records {
		values = append(values, *record)
	}

	events := shift.Project(values, time.Now())

	h.successResponse(w, r, "Lấy lịch làm việc thành công", events)
}

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    int64    `json:"userID" validate:"required"`
		RoomID    int64    `json:"roomID" validate:"required"`
		WorkDate  string   `json:"workDate" validate:"required,datetime=2006-01-02"`
		ShiftKeys []string `json:"shiftKeys" validate:"required,min=1,dive,oneof=morning afternoon"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)

	workDate, err := time.Parse(workDateLayout, req.WorkDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	table, err := h.loadWorkingHours(ctx, hospital.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	windows, err := shift.ValidateSingle(int(workDate.Weekday()), req.ShiftKeys, table)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	schedules := make([]*domain.ScheduleRecord, 0, len(windows))
	for i, window := range windows {
		schedule := &domain.ScheduleRecord{
			UserID:    req.UserID,
			WorkDate:  req.WorkDate,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
			TimeShift: shift.TimeShiftOf(req.ShiftKeys[i]),
			Room:      domain.Room{ID: req.RoomID},
		}

		if err := h.repository.CreateSchedule(schedule); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.ConstraintName {
				case "schedules_user_id_fkey":
					h.errorResponse(w, r, "Nhân viên không tồn tại")
				case "schedules_room_id_fkey":
					h.errorResponse(w, r, "Phòng không tồn tại")
				default:
					h.internalServerError(w, r, err)
				}
			} else {
				h.internalServerError(w, r, err)
			}
			return
		}

		schedules = append(schedules, schedule)
	}

	// báo lịch mới cho nhân viên qua email, lỗi gửi mail không làm hỏng yêu cầu
	if user, err := h.repository.GetUserByID(req.UserID); err == nil {
		shifts := make([]string, 0, len(windows))
		for i, window := range windows {
			shifts = append(shifts, fmt.Sprintf(
				"%s - %s (%s - %s)",
				domain.DayOfWeekName(int(workDate.Weekday())),
				shift.KeyLabel(req.ShiftKeys[i]),
				window.StartTime,
				window.EndTime,
			))
		}
		h.queueScheduleAssignedMail(user, shifts, req.WorkDate, req.WorkDate)
	} else {
		slog.Warn("Không đọc được thông tin nhân viên để gửi mail", "error", err)
	}

	h.successResponse(w, r, "Tạo lịch làm việc thành công", schedules)
}

func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomID    *int64   `json:"roomID"`
		WorkDate  *string  `json:"workDate" validate:"omitempty,datetime=2006-01-02"`
		ShiftKeys []string `json:"shiftKeys" validate:"omitempty,len=1,dive,oneof=morning afternoon"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)
	schedule := r.Context().Value(ScheduleCtx).(*domain.ScheduleRecord)

	// ca đã có lịch hẹn hoặc đã kết thúc thì khóa chỉnh sửa
	events := shift.Project([]domain.ScheduleRecord{*schedule}, time.Now())
	if len(events) != 1 || !shift.IsEditable(events[0], time.Now()) {
		h.errorResponse(w, r, "Ca làm việc đã có lịch hẹn hoặc đã kết thúc, không thể chỉnh sửa")
		return
	}

	if req.RoomID != nil {
		schedule.Room.ID = *req.RoomID
	}
	if req.WorkDate != nil {
		schedule.WorkDate = *req.WorkDate
	}

	shiftKey := shiftKeyOf(schedule.TimeShift)
	if len(req.ShiftKeys) == 1 {
		shiftKey = req.ShiftKeys[0]
	}

	workDate, err := time.Parse(workDateLayout, schedule.WorkDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	// ngày hoặc ca thay đổi đều phải đối chiếu lại với giờ làm việc hiện hành
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	table, err := h.loadWorkingHours(ctx, hospital.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	windows, err := shift.ValidateSingle(int(workDate.Weekday()), []string{shiftKey}, table)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	schedule.StartTime = windows[0].StartTime
	schedule.EndTime = windows[0].EndTime
	schedule.TimeShift = shift.TimeShiftOf(shiftKey)

	if err := h.repository.UpdateSchedule(schedule); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Vui lòng thử lại")
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedules_room_id_fkey":
				h.errorResponse(w, r, "Phòng không tồn tại")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Cập nhật lịch làm việc thành công", schedule)
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.ScheduleRecord)

	events := shift.Project([]domain.ScheduleRecord{*schedule}, time.Now())
	if len(events) != 1 || !shift.IsEditable(events[0], time.Now()) {
		h.errorResponse(w, r, "Ca làm việc đã có lịch hẹn hoặc đã kết thúc, không thể xóa")
		return
	}

	if err := h.repository.DeleteSchedule(schedule.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Xóa lịch làm việc thành công", nil)
}

func (h *Handler) BulkCreateSchedules(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserIDs    []int64  `json:"userIDs" validate:"required,min=1"`
		RoomID     int64    `json:"roomID" validate:"required"`
		DaysOfWeek []int    `json:"daysOfWeek" validate:"required,min=1,dive,min=0,max=6"`
		ShiftKeys  []string `json:"shiftKeys" validate:"required,min=1,dive,oneof=morning afternoon"`
		StartDate  string   `json:"startDate" validate:"required,datetime=2006-01-02"`
		EndDate    string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)

	startDate, err := time.Parse(workDateLayout, req.StartDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	endDate, err := time.Parse(workDateLayout, req.EndDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	if endDate.Before(startDate) {
		h.errorResponse(w, r, "Ngày kết thúc phải sau ngày bắt đầu")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	table, err := h.loadWorkingHours(ctx, hospital.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// một thứ không hợp lệ thì từ chối toàn bộ yêu cầu
	windowsByDay, err := shift.ValidateBulk(req.DaysOfWeek, req.ShiftKeys, table)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	created := 0
	shiftsByUser := make(map[int64][]string)

	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		windows, ok := windowsByDay[int(date.Weekday())]
		if !ok {
			continue
		}

		for _, userID := range req.UserIDs {
			for i, window := range windows {
				schedule := &domain.ScheduleRecord{
					UserID:    userID,
					WorkDate:  date.Format(workDateLayout),
					StartTime: window.StartTime,
					EndTime:   window.EndTime,
					TimeShift: shift.TimeShiftOf(req.ShiftKeys[i]),
					Room:      domain.Room{ID: req.RoomID},
				}

				if err := h.repository.CreateSchedule(schedule); err != nil {
					// không rollback: các ca đã tạo trước đó vẫn được giữ lại
					slog.Error("Tạo lịch hàng loạt bị gián đoạn", "created", created, "error", err)
					h.errorResponse(w, r, fmt.Sprintf("Tạo lịch hàng loạt thất bại sau khi đã tạo %d ca, các ca đã tạo không bị hủy", created))
					return
				}

				created++
				shiftsByUser[userID] = append(shiftsByUser[userID], fmt.Sprintf(
					"%s - %s (%s - %s)",
					domain.DayOfWeekName(int(date.Weekday())),
					shift.KeyLabel(req.ShiftKeys[i]),
					window.StartTime,
					window.EndTime,
				))
			}
		}
	}

	for userID, shifts := range shiftsByUser {
		user, err := h.repository.GetUserByID(userID)
		if err != nil {
			slog.Warn("Không đọc được thông tin nhân viên để gửi mail", "userID", userID, "error", err)
			continue
		}
		h.queueScheduleAssignedMail(user, shifts, req.StartDate, req.EndDate)
	}

	h.successResponse(w, r, fmt.Sprintf("Tạo lịch hàng loạt thành công (%d ca)", created), nil)
}

func shiftKeyOf(timeShift int32) string {
	if timeShift == domain.TimeShiftMorning {
		return shift.KeyMorning
	}
	return shift.KeyAfternoon
}

func (h *Handler) queueScheduleAssignedMail(user *domain.User, shifts []string, startDate, endDate string) {
	mailMessage := domain.MailMessage{
		Type: "schedule_assigned",
		To:   user.Email,
		Data: domain.ScheduleAssignedMailData{
			FullName:  user.FullName,
			Shifts:    shifts,
			StartDate: startDate,
			EndDate:   endDate,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Warn("Không chuẩn bị được mail báo lịch", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Warn("Không đẩy được mail báo lịch vào hàng đợi", "error", err)
	}
}
