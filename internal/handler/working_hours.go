package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/utils"
)

// loadWorkingHours đọc giờ làm việc từ cache, nếu không có thì đọc từ cơ sở dữ liệu
// rồi ghi lại vào cache. Lỗi cache không làm hỏng yêu cầu.
func (h *Handler) loadWorkingHours(ctx context.Context, hospitalID int64) ([]domain.WeekDayAvailability, error) {
	key := fmt.Sprintf("working_hours_%d", hospitalID)

	cached, err := h.redisClient.Get(ctx, key).Result()
	if err == nil {
		var table []domain.WeekDayAvailability
		if err := json.Unmarshal([]byte(cached), &table); err == nil {
			return table, nil
		}
	} else if err != redis.Nil {
		slog.Warn("Không đọc được cache giờ làm việc", "error", err)
	}

	table, err := h.repository.GetWorkingHours(hospitalID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(table); err == nil {
		if err := h.redisClient.Set(ctx, key, data, time.Duration(h.config.Redis.WorkingHoursTTL)*time.Second).Err(); err != nil {
			slog.Warn("Không ghi được cache giờ làm việc", "error", err)
		}
	}

	return table, nil
}

func (h *Handler) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	hospital := r.Context().Value(HospitalCtx).(*domain.Hospital)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	table, err := h.loadWorkingHours(ctx, hospital.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Lấy giờ làm việc thành công", table)
}

func (h *Handler) UpdateWorkingHours(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WorkingHours []struct {
			DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
			IsClosed  bool   `json:"isClosed"`
		} `json:"workingHours" validate:"required,min=1,max=7,dive"`
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

	table := make([]domain.WeekDayAvailability, 0, len(req.WorkingHours))
	for _, entry := range req.WorkingHours {
		row := domain.WeekDayAvailability{
			HospitalID: hospital.ID,
			DayOfWeek:  entry.DayOfWeek,
			StartTime:  entry.StartTime,
			EndTime:    entry.EndTime,
			IsClosed:   entry.IsClosed,
		}
		// ngày nghỉ luôn lưu mốc 00:00:00 để dữ liệu đồng nhất
		if row.IsClosed {
			row.StartTime = "00:00:00"
			row.EndTime = "00:00:00"
		}
		row.DayOfWeekName = domain.DayOfWeekName(row.DayOfWeek)
		table = append(table, row)
	}

	if err := utils.ValidateWeeklyAvailability(table); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.ReplaceWorkingHours(hospital.ID, table); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// xóa cache để lần đọc sau lấy dữ liệu mới
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, fmt.Sprintf("working_hours_%d", hospital.ID)).Err(); err != nil {
		slog.Warn("Không xóa được cache giờ làm việc", "error", err)
	}

	h.successResponse(w, r, "Cập nhật giờ làm việc thành công", table)
}
