package repository

import "errors"

var (
	// ErrActiveSlotTaken is returned when an insert or update hits the unique
	// index on active appointments for (doctor, date, start time).
	ErrActiveSlotTaken = errors.New("active appointment already holds this slot")
	// ErrTxConflict is returned when a serializable transaction lost to a
	// concurrent one (serialization failure or deadlock).
	ErrTxConflict = errors.New("transaction conflicted with a concurrent update")
)
