package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

func morningRecord(id int64, appointments []domain.Appointment) domain.ScheduleRecord {
	return domain.ScheduleRecord{
		ID:           id,
		WorkDate:     "2024-06-10",
		StartTime:    "08:00:00",
		EndTime:      "12:00:00",
		TimeShift:    domain.TimeShiftMorning,
		Appointments: appointments,
	}
}

func sampleAppointment() domain.Appointment {
	return domain.Appointment{
		ID:           7,
		Note:         "Tái khám",
		ServiceName:  "Khám tổng quát",
		ServicePrice: 350000,
		Patient: domain.Patient{
			ID:       21,
			FullName: "Trần Văn Bình",
			DOB:      "1990-03-15",
			Gender:   "male",
		},
	}
}

func TestProjectPreservesLengthAndOrder(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	records := []domain.ScheduleRecord{
		morningRecord(1, nil),
		morningRecord(2, []domain.Appointment{sampleAppointment()}),
		morningRecord(3, nil),
	}

	events := Project(records, now)

	require.Len(t, events, len(records))
	for i, rec := range records {
		assert.Equal(t, rec.ID, events[i].ID)
	}
}

func TestProjectStatusLabels(t *testing.T) {
	tests := []struct {
		name         string
		now          time.Time
		appointments []domain.Appointment
		wantStatus   string
	}{
		{
			name:         "có lịch hẹn, đã qua giờ kết thúc",
			now:          time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC),
			appointments: []domain.Appointment{sampleAppointment()},
			wantStatus:   StatusDone,
		},
		{
			name:         "có lịch hẹn, chưa đến giờ bắt đầu",
			now:          time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC),
			appointments: []domain.Appointment{sampleAppointment()},
			wantStatus:   StatusNotStarted,
		},
		{
			name:         "có lịch hẹn, đang trong ca",
			now:          time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			appointments: []domain.Appointment{sampleAppointment()},
			wantStatus:   StatusInProgress,
		},
		{
			name:       "ca rỗng, đã qua giờ kết thúc",
			now:        time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC),
			wantStatus: StatusEmptyPast,
		},
		{
			name:       "ca rỗng, chưa đến giờ bắt đầu",
			now:        time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC),
			wantStatus: StatusEmptyUpcoming,
		},
		{
			name:       "ca rỗng, đang trong ca",
			now:        time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			wantStatus: StatusEmptyWaiting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := Project([]domain.ScheduleRecord{morningRecord(1, tt.appointments)}, tt.now)

			require.Len(t, events, 1)
			assert.Equal(t, tt.wantStatus, events[0].Status)
		})
	}
}

func TestProjectTypeAndTitle(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	empty := morningRecord(1, nil)
	booked := morningRecord(2, []domain.Appointment{sampleAppointment()})
	afternoon := domain.ScheduleRecord{
		ID:        3,
		WorkDate:  "2024-06-10",
		StartTime: "12:00:00",
		EndTime:   "17:00:00",
		TimeShift: domain.TimeShiftAfternoon,
	}

	events := Project([]domain.ScheduleRecord{empty, booked, afternoon}, now)

	require.Len(t, events, 3)
	assert.Equal(t, TypeShift, events[0].Type)
	assert.Equal(t, TypeAppointment, events[1].Type)
	assert.Equal(t, TitleMorning, events[0].Title)
	assert.Equal(t, TitleMorning, events[1].Title)
	assert.Equal(t, TitleAfternoon, events[2].Title)
}

func TestProjectPatientSummary(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	events := Project([]domain.ScheduleRecord{morningRecord(1, []domain.Appointment{sampleAppointment()})}, now)

	require.Len(t, events, 1)
	require.Len(t, events[0].Patients, 1)

	p := events[0].Patients[0]
	assert.Equal(t, int64(21), p.ID)
	assert.Equal(t, "Trần Văn Bình", p.Name)
	assert.Equal(t, 34, p.Age) // sinh 1990-03-15, tính đến 2024-06-10
	assert.Equal(t, "Nam", p.Gender)
	assert.Equal(t, "Tái khám", p.Note)
	assert.Equal(t, "Khám tổng quát", p.ServiceName)
	assert.Equal(t, 350000.0, p.ServicePrice)
}

func TestProjectDegradesOnMissingPatientData(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	appt := domain.Appointment{ID: 9, Patient: domain.Patient{ID: 30}}

	events := Project([]domain.ScheduleRecord{morningRecord(1, []domain.Appointment{appt})}, now)

	require.Len(t, events, 1)
	require.Len(t, events[0].Patients, 1)

	p := events[0].Patients[0]
	assert.Equal(t, "Không rõ", p.Name)
	assert.Equal(t, "Không rõ", p.Gender)
	assert.Equal(t, 0, p.Age)
}

func TestProjectDegradesOnMalformedWorkDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	rec := morningRecord(1, nil)
	rec.WorkDate = "10/06/2024"

	events := Project([]domain.ScheduleRecord{rec}, now)

	require.Len(t, events, 1)
	assert.Empty(t, events[0].Start)
	assert.Empty(t, events[0].End)
	assert.Equal(t, StatusEmptyPast, events[0].Status)
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "Nam", GenderLabel("male"))
	assert.Equal(t, "Nữ", GenderLabel("Female"))
	assert.Equal(t, "Nữ", GenderLabel("nữ"))
	assert.Equal(t, "Không rõ", GenderLabel(""))
	assert.Equal(t, "Không rõ", GenderLabel("other"))
}
