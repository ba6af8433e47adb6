package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleMissingSelection(t *testing.T) {
	table := weekTable()

	tests := []struct {
		name      string
		dayOfWeek int
		shiftKeys []string
	}{
		{name: "không chọn ca", dayOfWeek: 1, shiftKeys: nil},
		{name: "thứ âm", dayOfWeek: -1, shiftKeys: []string{KeyMorning}},
		{name: "thứ vượt quá 6", dayOfWeek: 7, shiftKeys: []string{KeyMorning}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSingle(tt.dayOfWeek, tt.shiftKeys, table)
			assert.ErrorIs(t, err, ErrMissingSelection)
		})
	}
}

func TestValidateSingleRejectsClosedDay(t *testing.T) {
	_, err := ValidateSingle(0, []string{KeyMorning}, weekTable())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Chủ nhật")
	assert.Contains(t, err.Error(), TitleMorning)
}

func TestValidateSingleReturnsResolvedWindows(t *testing.T) {
	windows, err := ValidateSingle(1, []string{KeyAfternoon, KeyMorning}, weekTable())

	require.NoError(t, err)
	require.Len(t, windows, 2)
	// giữ nguyên thứ tự của shiftKeys
	assert.Equal(t, Window{StartTime: "12:00:00", EndTime: "17:00:00"}, windows[0])
	assert.Equal(t, Window{StartTime: "08:00:00", EndTime: "12:00:00"}, windows[1])
}

func TestValidateSingleUnknownKey(t *testing.T) {
	_, err := ValidateSingle(1, []string{"evening"}, weekTable())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "evening")
}

func TestValidateSingleNeverRejectsOpenWindows(t *testing.T) {
	table := weekTable()

	for _, day := range []int{1, 2, 5} {
		_, err := ValidateSingle(day, []string{KeyMorning, KeyAfternoon}, table)
		assert.NoError(t, err)
	}
}

func TestValidateBulkRejectsCitingFailingWeekday(t *testing.T) {
	// thứ hai làm việc, thứ ba nghỉ: từ chối toàn bộ, nêu rõ thứ ba
	table := weekTable()
	table[1].IsClosed = false
	table[2].IsClosed = true

	_, err := ValidateBulk([]int{1, 2}, []string{KeyAfternoon}, table)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Thứ ba")
}

func TestValidateBulkAllOpen(t *testing.T) {
	result, err := ValidateBulk([]int{1, 2, 5}, []string{KeyMorning}, weekTable())

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, Window{StartTime: "08:00:00", EndTime: "12:00:00"}, result[1][0])
	assert.Equal(t, Window{StartTime: "07:30:00", EndTime: "12:00:00"}, result[2][0])
	assert.Equal(t, Window{StartTime: "09:00:00", EndTime: "12:00:00"}, result[5][0])
}

func TestValidateBulkMissingSelection(t *testing.T) {
	_, err := ValidateBulk(nil, []string{KeyMorning}, weekTable())
	assert.ErrorIs(t, err, ErrMissingSelection)

	_, err = ValidateBulk([]int{1}, nil, weekTable())
	assert.ErrorIs(t, err, ErrMissingSelection)
}
