package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkingHours(t *testing.T) {
	columns := []string{
		"nghỉ",
		"07:00:00-17:00:00",
		"07:30:00 - 16:30:00",
		"",
		"08:00:00-18:00:00",
		"08:00:00-18:00:00",
		"Nghỉ",
	}

	table, err := parseWorkingHours(columns)
	require.NoError(t, err)
	require.Len(t, table, 7)

	assert.True(t, table[0].IsClosed)
	assert.Equal(t, "00:00:00", table[0].StartTime)
	assert.True(t, table[3].IsClosed)
	assert.True(t, table[6].IsClosed)

	assert.False(t, table[1].IsClosed)
	assert.Equal(t, "07:00:00", table[1].StartTime)
	assert.Equal(t, "17:00:00", table[1].EndTime)

	assert.Equal(t, "07:30:00", table[2].StartTime)
	assert.Equal(t, "16:30:00", table[2].EndTime)

	assert.Equal(t, "Chủ nhật", table[0].DayOfWeekName)
	assert.Equal(t, "Thứ bảy", table[6].DayOfWeekName)
}

func TestParseWorkingHoursRejectsMalformedColumn(t *testing.T) {
	_, err := parseWorkingHours([]string{"07:00:00"})
	assert.Error(t, err)
}
