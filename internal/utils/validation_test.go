package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

func TestValidateWeeklyAvailability(t *testing.T) {
	tests := []struct {
		name    string
		table   []domain.WeekDayAvailability
		wantErr string
	}{
		{
			name: "bảng hợp lệ",
			table: []domain.WeekDayAvailability{
				{DayOfWeek: 0, IsClosed: true},
				{DayOfWeek: 1, StartTime: "08:00:00", EndTime: "17:00:00"},
			},
		},
		{
			name: "cả hai mốc bằng 00:00:00 tương đương ngày nghỉ",
			table: []domain.WeekDayAvailability{
				{DayOfWeek: 1, StartTime: "00:00:00", EndTime: "00:00:00"},
			},
		},
		{
			name:    "thứ vượt quá 6",
			table:   []domain.WeekDayAvailability{{DayOfWeek: 7, IsClosed: true}},
			wantErr: "Thứ không hợp lệ",
		},
		{
			name: "trùng lặp cấu hình",
			table: []domain.WeekDayAvailability{
				{DayOfWeek: 1, StartTime: "08:00:00", EndTime: "17:00:00"},
				{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "18:00:00"},
			},
			wantErr: "trùng lặp",
		},
		{
			name: "giờ đóng cửa trước giờ mở cửa",
			table: []domain.WeekDayAvailability{
				{DayOfWeek: 2, StartTime: "17:00:00", EndTime: "08:00:00"},
			},
			wantErr: "phải sau giờ mở cửa",
		},
		{
			name: "giờ sai định dạng",
			table: []domain.WeekDayAvailability{
				{DayOfWeek: 3, StartTime: "8h00", EndTime: "17:00:00"},
			},
			wantErr: "sai định dạng",
		},
		{
			name: "ngày nghỉ không cần giờ hợp lệ",
			table: []domain.WeekDayAvailability{
				{DayOfWeek: 4, IsClosed: true, StartTime: "", EndTime: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeeklyAvailability(tt.table)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
