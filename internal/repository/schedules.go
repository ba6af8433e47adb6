package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

const scheduleColumns = `
	s.id,
	s.user_id,
	s.work_date::text,
	s.start_time::text,
	s.end_time::text,
	s.time_shift,
	s.created_at,
	s.version,
	rm.id,
	rm.name,
	rm.department_name,
	a.id,
	a.note,
	a.service_name,
	a.service_price,
	p.id,
	p.full_name,
	p.dob::text,
	p.gender
`

type scheduleRow struct {
	ID        int64
	UserID    int64
	WorkDate  string
	StartTime string
	EndTime   string
	TimeShift int32
	CreatedAt time.Time
	Version   int32

	RoomID             int64
	RoomName           string
	RoomDepartmentName string

	AppointmentID sql.NullInt64
	Note          sql.NullString
	ServiceName   sql.NullString
	ServicePrice  sql.NullFloat64
	PatientID     sql.NullInt64
	PatientName   sql.NullString
	PatientDOB    sql.NullString
	PatientGender sql.NullString
}

func (row *scheduleRow) dst() []any {
	return []any{
		&row.ID,
		&row.UserID,
		&row.WorkDate,
		&row.StartTime,
		&row.EndTime,
		&row.TimeShift,
		&row.CreatedAt,
		&row.Version,
		&row.RoomID,
		&row.RoomName,
		&row.RoomDepartmentName,
		&row.AppointmentID,
		&row.Note,
		&row.ServiceName,
		&row.ServicePrice,
		&row.PatientID,
		&row.PatientName,
		&row.PatientDOB,
		&row.PatientGender,
	}
}

func (row *scheduleRow) toRecord() *domain.ScheduleRecord {
	return &domain.ScheduleRecord{
		ID:        row.ID,
		UserID:    row.UserID,
		WorkDate:  row.WorkDate,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		TimeShift: row.TimeShift,
		CreatedAt: row.CreatedAt,
		Version:   row.Version,
		Room: domain.Room{
			ID:             row.RoomID,
			Name:           row.RoomName,
			DepartmentName: row.RoomDepartmentName,
		},
		Appointments: make([]domain.Appointment, 0),
	}
}

func (row *scheduleRow) toAppointment() domain.Appointment {
	return domain.Appointment{
		ID:           row.AppointmentID.Int64,
		Note:         row.Note.String,
		ServiceName:  row.ServiceName.String,
		ServicePrice: row.ServicePrice.Float64,
		Patient: domain.Patient{
			ID:       row.PatientID.Int64,
			FullName: row.PatientName.String,
			DOB:      row.PatientDOB.String,
			Gender:   row.PatientGender.String,
		},
	}
}

func (r *Repository) GetSchedulesByUserAndRange(hospitalID, userID int64, from, to string) ([]*domain.ScheduleRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN rooms rm ON rm.id = s.room_id
		LEFT JOIN appointments a ON a.schedule_id = s.id
		LEFT JOIN patients p ON p.id = a.patient_id
		WHERE rm.hospital_id = $1 AND s.user_id = $2 AND s.work_date BETWEEN $3 AND $4
		ORDER BY s.work_date, s.start_time, s.id, a.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, hospitalID, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.ScheduleRecord, 0)
	recordsMap := make(map[int64]*domain.ScheduleRecord)

	for rows.Next() {
		var row scheduleRow
		if err := rows.Scan(row.dst()...); err != nil {
			return nil, err
		}

		record, exists := recordsMap[row.ID]
		if !exists {
			// lần đầu gặp ca này, khởi tạo trong map và giữ thứ tự đọc được
			record = row.toRecord()
			recordsMap[row.ID] = record
			records = append(records, record)
		}

		// appointment ID rỗng nghĩa là ca chưa có lịch hẹn nào
		if !row.AppointmentID.Valid {
			continue
		}

		record.Appointments = append(record.Appointments, row.toAppointment())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *Repository) GetScheduleByID(id int64) (*domain.ScheduleRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN rooms rm ON rm.id = s.room_id
		LEFT JOIN appointments a ON a.schedule_id = s.id
		LEFT JOIN patients p ON p.id = a.patient_id
		WHERE s.id = $1
		ORDER BY a.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var record *domain.ScheduleRecord

	for rows.Next() {
		var row scheduleRow
		if err := rows.Scan(row.dst()...); err != nil {
			return nil, err
		}

		if record == nil {
			record = row.toRecord()
		}

		if !row.AppointmentID.Valid {
			continue
		}

		record.Appointments = append(record.Appointments, row.toAppointment())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if record == nil {
		return nil, sql.ErrNoRows
	}

	return record, nil
}

func (r *Repository) CreateSchedule(schedule *domain.ScheduleRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO schedules (user_id, room_id, work_date, start_time, end_time, time_shift)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	args := []any{schedule.UserID, schedule.Room.ID, schedule.WorkDate, schedule.StartTime, schedule.EndTime, schedule.TimeShift}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateSchedule(schedule *domain.ScheduleRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE schedules
		SET
			room_id = $1,
			work_date = $2,
			start_time = $3,
			end_time = $4,
			time_shift = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	args := []any{schedule.Room.ID, schedule.WorkDate, schedule.StartTime, schedule.EndTime, schedule.TimeShift, schedule.ID, schedule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&schedule.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSchedule(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM schedules WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
