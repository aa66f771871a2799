package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/logistservice/logist/internal/domain/errors"
	"github.com/logistservice/logist/internal/domain/model"
)

type assignmentRepository struct {
	storage *Storage
}

const assignmentColumns = `a.id, a.order_id, a.vehicle_id, v.registration_number, a.driver_id, d.full_name,
       a.planned_start, a.planned_end, a.actual_start, a.actual_end`

const assignmentFrom = ` FROM assignments a
       JOIN vehicles v ON v.id = a.vehicle_id
       JOIN drivers d ON d.id = a.driver_id`

func scanAssignment(row pgx.Row) (*model.Assignment, error) {
	var a model.Assignment
	err := row.Scan(&a.ID, &a.OrderID, &a.VehicleID, &a.VehicleRegistration, &a.DriverID, &a.DriverName,
		&a.PlannedStart, &a.PlannedEnd, &a.ActualStart, &a.ActualEnd)
	if err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *model.Assignment) (*model.Assignment, error) {
	const query = `INSERT INTO assignments (order_id, vehicle_id, driver_id, planned_start, planned_end, actual_start, actual_end)
                   VALUES ($1,$2,$3,$4,$5,$6,$7)
                   RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query,
		assignment.OrderID, assignment.VehicleID, assignment.DriverID,
		assignment.PlannedStart, assignment.PlannedEnd,
		assignment.ActualStart, assignment.ActualEnd,
	).Scan(&assignment.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return assignment, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + assignmentFrom + ` WHERE a.id=$1`
	return scanAssignment(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *assignmentRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + assignmentFrom + ` WHERE a.order_id=$1 ORDER BY a.id`
	return r.list(ctx, query, orderID)
}

func (r *assignmentRepository) ListAll(ctx context.Context) ([]model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + assignmentFrom + ` ORDER BY a.id`
	return r.list(ctx, query)
}

func (r *assignmentRepository) list(ctx context.Context, query string, args ...any) ([]model.Assignment, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *model.Assignment) error {
	const query = `UPDATE assignments SET vehicle_id=$1, driver_id=$2,
                       planned_start=$3, planned_end=$4, actual_start=$5, actual_end=$6
                   WHERE id=$7`
	tag, err := r.storage.pool.Exec(ctx, query,
		assignment.VehicleID, assignment.DriverID,
		assignment.PlannedStart, assignment.PlannedEnd,
		assignment.ActualStart, assignment.ActualEnd,
		assignment.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *assignmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM assignments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
