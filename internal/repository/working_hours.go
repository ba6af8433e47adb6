package repository

import (
	"context"
	"time"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

func (r *Repository) GetWorkingHours(hospitalID int64) ([]domain.WeekDayAvailability, error) {
	query := `
		SELECT day_of_week, start_time::text, end_time::text, is_closed
		FROM hospital_working_hours
		WHERE hospital_id = $1
		ORDER BY day_of_week
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := make([]domain.WeekDayAvailability, 0, 7)
	for rows.Next() {
		entry := domain.WeekDayAvailability{
			HospitalID: hospitalID,
		}
		dst := []any{&entry.DayOfWeek, &entry.StartTime, &entry.EndTime, &entry.IsClosed}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entry.DayOfWeekName = domain.DayOfWeekName(entry.DayOfWeek)
		table = append(table, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

// ReplaceWorkingHours thay toàn bộ bảng giờ làm việc của một bệnh viện trong
// một transaction: xóa cấu hình cũ rồi ghi cấu hình mới.
func (r *Repository) ReplaceWorkingHours(hospitalID int64, table []domain.WeekDayAvailability) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		DELETE FROM hospital_working_hours WHERE hospital_id = $1
	`
	if _, err := tx.ExecContext(ctx, query, hospitalID); err != nil {
		return err
	}

	for _, entry := range table {
		query = `
			INSERT INTO hospital_working_hours (hospital_id, day_of_week, start_time, end_time, is_closed)
			VALUES ($1, $2, $3, $4, $5)
		`
		params := []any{hospitalID, entry.DayOfWeek, entry.StartTime, entry.EndTime, entry.IsClosed}
		if _, err := tx.ExecContext(ctx, query, params...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
