package postgres

import (
	"context"

	domainErrors "github.com/logistservice/logist/internal/domain/errors"
	"github.com/logistservice/logist/internal/domain/model"
)

type clientRepository struct {
	storage *Storage
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	const query = `INSERT INTO clients (name, contact_person, phone, email, tax_number, city, address, active)
                   VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		client.Name, client.ContactPerson, client.Phone, client.Email,
		client.TaxNumber, client.City, client.Address, client.Active,
	).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return client, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	const query = `SELECT id, name, contact_person, phone, email, tax_number, city, address, active, created_at
                   FROM clients WHERE id=$1`
	var c model.Client
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.ContactPerson, &c.Phone, &c.Email,
		&c.TaxNumber, &c.City, &c.Address, &c.Active, &c.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	const query = `SELECT id, name, contact_person, phone, email, tax_number, city, address, active, created_at
                   FROM clients ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Phone, &c.Email,
			&c.TaxNumber, &c.City, &c.Address, &c.Active, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *clientRepository) Update(ctx context.Context, client *model.Client) error {
	const query = `UPDATE clients SET name=$1, contact_person=$2, phone=$3, email=$4,
                       tax_number=$5, city=$6, address=$7, active=$8
                   WHERE id=$9`
	tag, err := r.storage.pool.Exec(ctx, query,
		client.Name, client.ContactPerson, client.Phone, client.Email,
		client.TaxNumber, client.City, client.Address, client.Active, client.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

type driverRepository struct {
	storage *Storage
}

func (r *driverRepository) Create(ctx context.Context, driver *model.Driver) (*model.Driver, error) {
	const query = `INSERT INTO drivers (full_name, phone, driving_license, experience_years, active)
                   VALUES ($1,$2,$3,$4,$5)
                   RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query,
		driver.FullName, driver.Phone, driver.DrivingLicense, driver.ExperienceYears, driver.Active,
	).Scan(&driver.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return driver, nil
}

func (r *driverRepository) GetByID(ctx context.Context, id int64) (*model.Driver, error) {
	const query = `SELECT id, full_name, phone, driving_license, experience_years, active
                   FROM drivers WHERE id=$1`
	var d model.Driver
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.FullName, &d.Phone, &d.DrivingLicense, &d.ExperienceYears, &d.Active)
	if err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

func (r *driverRepository) List(ctx context.Context) ([]model.Driver, error) {
	const query = `SELECT id, full_name, phone, driving_license, experience_years, active
                   FROM drivers ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Driver
	for rows.Next() {
		var d model.Driver
		if err := rows.Scan(&d.ID, &d.FullName, &d.Phone, &d.DrivingLicense, &d.ExperienceYears, &d.Active); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *driverRepository) Update(ctx context.Context, driver *model.Driver) error {
	const query = `UPDATE drivers SET full_name=$1, phone=$2, driving_license=$3, experience_years=$4, active=$5
                   WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		driver.FullName, driver.Phone, driver.DrivingLicense, driver.ExperienceYears, driver.Active, driver.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM drivers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

type vehicleRepository struct {
	storage *Storage
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	const query = `INSERT INTO vehicles (registration_number, type, capacity_weight, capacity_volume, status)
                   VALUES ($1,$2,$3,$4,$5)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		vehicle.RegistrationNumber, vehicle.Type, vehicle.CapacityWeight, vehicle.CapacityVolume, vehicle.Status,
	).Scan(&vehicle.ID, &vehicle.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return vehicle, nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	const query = `SELECT id, registration_number, type, capacity_weight, capacity_volume, status, created_at
                   FROM vehicles WHERE id=$1`
	var v model.Vehicle
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.RegistrationNumber, &v.Type, &v.CapacityWeight, &v.CapacityVolume, &v.Status, &v.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	const query = `SELECT id, registration_number, type, capacity_weight, capacity_volume, status, created_at
                   FROM vehicles ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.RegistrationNumber, &v.Type, &v.CapacityWeight, &v.CapacityVolume, &v.Status, &v.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	const query = `UPDATE vehicles SET registration_number=$1, type=$2, capacity_weight=$3, capacity_volume=$4, status=$5
                   WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		vehicle.RegistrationNumber, vehicle.Type, vehicle.CapacityWeight, vehicle.CapacityVolume, vehicle.Status, vehicle.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM vehicles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
