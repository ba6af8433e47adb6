package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

func weekTable() []domain.WeekDayAvailability {
	return []domain.WeekDayAvailability{
		{DayOfWeek: 0, IsClosed: true, StartTime: "00:00:00", EndTime: "00:00:00"},
		{DayOfWeek: 1, StartTime: "08:00:00", EndTime: "17:00:00"},
		{DayOfWeek: 2, StartTime: "07:30:00", EndTime: "16:30:00"},
		{DayOfWeek: 3, StartTime: "00:00:00", EndTime: "17:00:00"},
		{DayOfWeek: 4, StartTime: "08:00:00", EndTime: "00:00:00"},
		{DayOfWeek: 5, StartTime: "09:00:00", EndTime: "18:00:00"},
		// thứ bảy không có trong bảng
	}
}

func TestResolveOpenDay(t *testing.T) {
	windows := Resolve(1, weekTable())

	assert.Equal(t, Window{StartTime: "08:00:00", EndTime: "12:00:00"}, windows.Morning)
	assert.Equal(t, Window{StartTime: "12:00:00", EndTime: "17:00:00"}, windows.Afternoon)
}

func TestResolveClosedOrInvalidDays(t *testing.T) {
	tests := []struct {
		name      string
		dayOfWeek int
	}{
		{name: "ngày nghỉ", dayOfWeek: 0},
		{name: "giờ mở cửa bằng 00:00:00", dayOfWeek: 3},
		{name: "giờ đóng cửa bằng 00:00:00", dayOfWeek: 4},
		{name: "không có trong bảng", dayOfWeek: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows := Resolve(tt.dayOfWeek, weekTable())

			assert.Equal(t, Closed, windows.Morning)
			assert.Equal(t, Closed, windows.Afternoon)
			assert.True(t, windows.Morning.IsClosed())
			assert.True(t, windows.Afternoon.IsClosed())
		})
	}
}

func TestResolvePartitionsOpenDaysAtNoon(t *testing.T) {
	table := weekTable()

	for _, day := range []int{1, 2, 5} {
		windows := Resolve(day, table)

		require.False(t, windows.Morning.IsClosed())
		assert.Equal(t, "12:00:00", windows.Morning.EndTime)
		assert.Equal(t, "12:00:00", windows.Afternoon.StartTime)
	}
}

// Bệnh viện mở cửa sau buổi trưa: ca sáng bị đảo ngược (start > end).
// Hành vi này giữ nguyên theo hệ thống gốc, chưa "sửa" khi chưa có quyết định
// nghiệp vụ.
func TestResolveOpenAfterNoonKeepsInvertedMorning(t *testing.T) {
	table := []domain.WeekDayAvailability{
		{DayOfWeek: 1, StartTime: "13:00:00", EndTime: "18:00:00"},
	}

	windows := Resolve(1, table)

	assert.Equal(t, Window{StartTime: "13:00:00", EndTime: "12:00:00"}, windows.Morning)
	assert.Equal(t, Window{StartTime: "12:00:00", EndTime: "18:00:00"}, windows.Afternoon)
	assert.False(t, windows.Morning.IsClosed())
}

func TestDayWindowsByKey(t *testing.T) {
	windows := Resolve(1, weekTable())

	morning, ok := windows.ByKey(KeyMorning)
	require.True(t, ok)
	assert.Equal(t, windows.Morning, morning)

	afternoon, ok := windows.ByKey(KeyAfternoon)
	require.True(t, ok)
	assert.Equal(t, windows.Afternoon, afternoon)

	_, ok = windows.ByKey("evening")
	assert.False(t, ok)
}
