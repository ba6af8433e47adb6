package repository

import (
	"context"
	"time"

	"github.com/vietcare-dev/hospital-shift-manager/backend/internal/domain"
)

func (r *Repository) GetAllHospitals() ([]*domain.Hospital, error) {
	query := `
		SELECT id, name, address, created_at, version FROM hospitals ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hospitals := make([]*domain.Hospital, 0)
	for rows.Next() {
		hospital := &domain.Hospital{}
		dst := []any{&hospital.ID, &hospital.Name, &hospital.Address, &hospital.CreatedAt, &hospital.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, hospital)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hospitals, nil
}

func (r *Repository) GetHospitalByID(id int64) (*domain.Hospital, error) {
	query := `
		SELECT name, address, created_at, version FROM hospitals WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	hospital := &domain.Hospital{
		ID: id,
	}

	dst := []any{&hospital.Name, &hospital.Address, &hospital.CreatedAt, &hospital.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return hospital, nil
}

func (r *Repository) CreateHospital(hospital *domain.Hospital) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO hospitals (name, address)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, hospital.Name, hospital.Address).Scan(&hospital.ID, &hospital.CreatedAt, &hospital.Version); err != nil {
		return err
	}

	return nil
}
