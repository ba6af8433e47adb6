package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

func TestIsEditable(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	future := now.Add(2 * time.Hour).Format(time.RFC3339)
	past := now.Add(-2 * time.Hour).Format(time.RFC3339)

	twoPatients := []domain.PatientSummary{{ID: 1}, {ID: 2}}

	tests := []struct {
		name  string
		event domain.ScheduleEvent
		want  bool
	}{
		{
			name:  "ca rỗng chưa kết thúc",
			event: domain.ScheduleEvent{End: future},
			want:  true,
		},
		{
			name:  "có lịch hẹn thì không sửa được, kể cả khi chưa kết thúc",
			event: domain.ScheduleEvent{End: future, Patients: twoPatients},
			want:  false,
		},
		{
			name:  "ca đã kết thúc thì không sửa được, kể cả khi rỗng",
			event: domain.ScheduleEvent{End: past},
			want:  false,
		},
		{
			name:  "vừa có lịch hẹn vừa đã kết thúc",
			event: domain.ScheduleEvent{End: past, Patients: twoPatients},
			want:  false,
		},
		{
			name:  "thời gian kết thúc không đọc được",
			event: domain.ScheduleEvent{End: ""},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEditable(tt.event, now))
		})
	}
}
