package utils

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldDiacritics(t *testing.T) {
	assert.Equal(t, "Nguyen Van Duc", FoldDiacritics("Nguyễn Văn Đức"))
	assert.Equal(t, "Tran Thi Huong", FoldDiacritics("Trần Thị Hương"))
	assert.Equal(t, "do", FoldDiacritics("đỗ"))
}

func TestGenerateUsernameFromFullName(t *testing.T) {
	username := GenerateUsernameFromFullName("Nguyễn Văn Đức")

	assert.True(t, strings.HasPrefix(username, "nguyenvanduc"), "username = %q", username)
	for _, r := range username {
		assert.True(t, r < unicode.MaxASCII, "username chứa ký tự ngoài ASCII: %q", username)
	}
}

func TestGenerateRandomWorkingHours(t *testing.T) {
	table := GenerateRandomWorkingHours(1)

	require.Len(t, table, 7)
	require.NoError(t, ValidateWeeklyAvailability(table))

	assert.True(t, table[0].IsClosed) // chủ nhật nghỉ
	for _, entry := range table[1:] {
		assert.False(t, entry.IsClosed)
		// khung giờ phải vắt qua buổi trưa để ca sáng / ca chiều đều hợp lệ
		assert.Less(t, entry.StartTime, "12:00:00")
		assert.Greater(t, entry.EndTime, "12:00:00")
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	assert.Len(t, password, 12)
}

func TestGenerateRandomOTP(t *testing.T) {
	otp := GenerateRandomOTP()
	require.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}
