package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Assignments() AssignmentRepository
	Clients() ClientRepository
	Drivers() DriverRepository
	Vehicles() VehicleRepository
	Users() UserRepository
}
