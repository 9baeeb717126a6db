package booking

import "errors"

var (
	ErrDuplicateID             = errors.New("duplicate id")
	ErrNotFound                = errors.New("not found")
	ErrHasActiveAppointments   = errors.New("patient has booked appointments")
	ErrSlotUnavailable         = errors.New("time slot is not available")
	ErrIllegalStateTransition  = errors.New("illegal status transition")
	ErrTreatmentNotInExpertise = errors.New("treatment expertise area not held by practitioner")

	ErrInvalidTreatment    = errors.New("invalid treatment")
	ErrInvalidSlot         = errors.New("invalid time slot")
	ErrInvalidDateKey      = errors.New("invalid date key")
	ErrSlotAlreadyOwned    = errors.New("time slot already belongs to a practitioner")
	ErrSlotNotOwned        = errors.New("time slot does not belong to practitioner")
	ErrTreatmentNotOffered = errors.New("treatment not offered by practitioner")
)
