package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, company_id, make, model, license_plate,
	daily_rate_cents, mileage, status, created_at, updated_at`

func (repo *vehicleRepository) get(ctx context.Context, id int64, forUpdate bool) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	v := &domain.Vehicle{}
	err := q(ctx, repo.db).QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.CompanyID, &v.Make, &v.Model, &v.LicensePlate,
		&v.DailyRateCents, &v.Mileage, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("vehicle %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (repo *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return repo.get(ctx, id, false)
}

func (repo *vehicleRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return repo.get(ctx, id, true)
}

func (repo *vehicleRepository) SetStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	_, err := q(ctx, repo.db).ExecContext(ctx,
		`UPDATE vehicles SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	return err
}

func (repo *vehicleRepository) SetMileage(ctx context.Context, id int64, mileage int32) error {
	_, err := q(ctx, repo.db).ExecContext(ctx,
		`UPDATE vehicles SET mileage = $1, updated_at = $2 WHERE id = $3`,
		mileage, time.Now(), id)
	return err
}
