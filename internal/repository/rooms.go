package repository

import (
	"context"
	"time"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

func (r *Repository) GetRoomsByHospital(hospitalID int64) ([]*domain.Room, error) {
	query := `
		SELECT id, name, department_name FROM rooms WHERE hospital_id = $1 ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room := &domain.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.DepartmentName); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *Repository) CreateRoom(hospitalID int64, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO rooms (hospital_id, name, department_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.dbpool.QueryRowContext(ctx, query, hospitalID, room.Name, room.DepartmentName).Scan(&room.ID); err != nil {
		return err
	}

	return nil
}
