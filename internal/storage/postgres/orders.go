package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/logistservice/logist/internal/domain/errors"
	"github.com/logistservice/logist/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `o.id, o.number, o.client_id, c.name, o.status, o.created_at,
       o.planned_pickup_date, o.planned_delivery_date, o.actual_delivery_date,
       o.origin_city, o.origin_address, o.destination_city, o.destination_address,
       o.cargo_description, o.cargo_weight, o.cargo_volume, o.price,
       o.manager_id, u.full_name`

const orderFrom = ` FROM orders o
       JOIN clients c ON c.id = o.client_id
       LEFT JOIN users u ON u.id = o.manager_id`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Number, &o.ClientID, &o.ClientName, &o.Status, &o.CreatedAt,
		&o.PlannedPickupDate, &o.PlannedDeliveryDate, &o.ActualDeliveryDate,
		&o.OriginCity, &o.OriginAddress, &o.DestinationCity, &o.DestinationAddress,
		&o.CargoDescription, &o.CargoWeight, &o.CargoVolume, &o.Price,
		&o.ManagerID, &o.ManagerName)
	if err != nil {
		return nil, translateError(err)
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order, assignment *model.Assignment) (*model.Order, error) {
	const insertOrder = `INSERT INTO orders (number, client_id, status, created_at,
                             planned_pickup_date, planned_delivery_date,
                             origin_city, origin_address, destination_city, destination_address,
                             cargo_description, cargo_weight, cargo_volume, price, manager_id)
                         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
                         RETURNING id`
	const insertAssignment = `INSERT INTO assignments (order_id, vehicle_id, driver_id, planned_start, planned_end)
                              VALUES ($1,$2,$3,$4,$5)
                              RETURNING id`

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrder,
			order.Number, order.ClientID, order.Status, order.CreatedAt,
			order.PlannedPickupDate, order.PlannedDeliveryDate,
			order.OriginCity, order.OriginAddress, order.DestinationCity, order.DestinationAddress,
			order.CargoDescription, order.CargoWeight, order.CargoVolume, order.Price, order.ManagerID,
		).Scan(&order.ID)
		if err != nil {
			return err
		}

		if assignment != nil {
			assignment.OrderID = order.ID
			return tx.QueryRow(ctx, insertAssignment,
				assignment.OrderID, assignment.VehicleID, assignment.DriverID,
				assignment.PlannedStart, assignment.PlannedEnd,
			).Scan(&assignment.ID)
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + orderFrom + ` WHERE o.id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + orderFrom + ` WHERE o.number=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, number))
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + orderFrom + ` ORDER BY o.id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order, assignment *model.Assignment) error {
	const updateOrder = `UPDATE orders SET client_id=$1, manager_id=$2,
                             planned_pickup_date=$3, planned_delivery_date=$4,
                             origin_city=$5, origin_address=$6, destination_city=$7, destination_address=$8,
                             cargo_description=$9, cargo_weight=$10, cargo_volume=$11, price=$12
                         WHERE id=$13`
	const firstAssignment = `SELECT id FROM assignments WHERE order_id=$1 ORDER BY id LIMIT 1`
	const updateAssignment = `UPDATE assignments SET vehicle_id=$1, driver_id=$2, planned_start=$3, planned_end=$4 WHERE id=$5`
	const insertAssignment = `INSERT INTO assignments (order_id, vehicle_id, driver_id, planned_start, planned_end)
                              VALUES ($1,$2,$3,$4,$5)
                              RETURNING id`

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateOrder,
			order.ClientID, order.ManagerID,
			order.PlannedPickupDate, order.PlannedDeliveryDate,
			order.OriginCity, order.OriginAddress, order.DestinationCity, order.DestinationAddress,
			order.CargoDescription, order.CargoWeight, order.CargoVolume, order.Price,
			order.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		if assignment == nil {
			return nil
		}

		var assignmentID int64
		err = tx.QueryRow(ctx, firstAssignment, order.ID).Scan(&assignmentID)
		switch {
		case err == nil:
			assignment.ID = assignmentID
			assignment.OrderID = order.ID
			_, err = tx.Exec(ctx, updateAssignment,
				assignment.VehicleID, assignment.DriverID,
				assignment.PlannedStart, assignment.PlannedEnd, assignmentID)
			return err
		case err == pgx.ErrNoRows:
			assignment.OrderID = order.ID
			return tx.QueryRow(ctx, insertAssignment,
				assignment.OrderID, assignment.VehicleID, assignment.DriverID,
				assignment.PlannedStart, assignment.PlannedEnd,
			).Scan(&assignment.ID)
		default:
			return err
		}
	})
	return translateError(err)
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) TransitionStatus(ctx context.Context, change *model.StatusChange, deliveredAt *time.Time) error {
	const insertHistory = `INSERT INTO order_status_history (order_id, old_status, new_status, changed_at, changed_by)
                           VALUES ($1,$2,$3,$4,$5)
                           RETURNING id`
	const updateOrder = `UPDATE orders SET status=$1, actual_delivery_date=COALESCE($2, actual_delivery_date) WHERE id=$3`

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertHistory,
			change.OrderID, change.OldStatus, change.NewStatus, change.ChangedAt, change.ChangedByID,
		).Scan(&change.ID)
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, updateOrder, change.NewStatus, deliveredAt, change.OrderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	return translateError(err)
}

func (r *orderRepository) History(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	const query = `SELECT h.id, h.order_id, h.old_status, h.new_status, h.changed_at, h.changed_by, u.username
                   FROM order_status_history h
                   LEFT JOIN users u ON u.id = h.changed_by
                   WHERE h.order_id=$1
                   ORDER BY h.id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StatusChange
	for rows.Next() {
		var h model.StatusChange
		if err := rows.Scan(&h.ID, &h.OrderID, &h.OldStatus, &h.NewStatus, &h.ChangedAt, &h.ChangedByID, &h.ChangedByName); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
