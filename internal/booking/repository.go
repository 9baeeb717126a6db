package booking

// PatientRepository stores patients keyed by id.
type PatientRepository interface {
	// Add fails with ErrDuplicateID if the id is taken.
	Add(p Patient) error
	// Remove fails with ErrNotFound if the id is absent.
	Remove(id int) error
	ByID(id int) (Patient, error)
	// All returns patients in insertion order.
	All() []Patient
}

// AppointmentRepository stores appointment records. Records are never deleted.
type AppointmentRepository interface {
	// Put inserts a new record; it fails with ErrDuplicateID if the id is taken.
	Put(a Appointment) error
	ByID(id int) (Appointment, error)
	// All returns records in ascending id order.
	All() []Appointment
	// UpdateStatus moves a record from one status to another.
	// It fails with ErrIllegalStateTransition if the current status is not from.
	UpdateStatus(id int, from, to Status) error
}
