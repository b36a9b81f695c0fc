// Package repository implements data access over *sql.DB. Sentinel
// errors let handlers map failure modes to HTTP statuses without
// string matching.
package repository

import "errors"

// ErrEmailExists is returned when registration hits the unique email
// constraint. Handlers translate it into HTTP 400.
var ErrEmailExists = errors.New("email already exists")

// ErrAlreadyCheckedIn is returned when an insert for (user, date) hits
// the attendance uniqueness constraint: the user already has a record
// for today. Handlers translate it into HTTP 400.
var ErrAlreadyCheckedIn = errors.New("already checked in today")

// ErrNoCheckInFound is returned by checkout when no record exists for
// (user, today). Handlers translate it into HTTP 404.
var ErrNoCheckInFound = errors.New("no check-in found")

// ErrAlreadyCheckedOut is returned by checkout when the record is
// already closed, including the case where a concurrent checkout won
// the race. Handlers translate it into HTTP 400.
var ErrAlreadyCheckedOut = errors.New("already checked out")
