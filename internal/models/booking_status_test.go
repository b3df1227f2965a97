package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, BookingStatus("DONE").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{StatusPending, StatusAssigned, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},

		{StatusAssigned, StatusInProgress, true},
		{StatusAssigned, StatusCompleted, true},
		{StatusAssigned, StatusCancelled, true},
		{StatusAssigned, StatusPending, true}, // staff un-assigns

		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusPending, false},
		{StatusInProgress, StatusAssigned, false},

		// COMPLETED is terminal
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusAssigned, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusCancelled, false},

		{StatusCancelled, StatusPending, true}, // reinstate
		{StatusCancelled, StatusAssigned, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatusHasDriver(t *testing.T) {
	assert.False(t, StatusPending.HasDriver())
	assert.True(t, StatusAssigned.HasDriver())
	assert.True(t, StatusInProgress.HasDriver())
	assert.True(t, StatusCompleted.HasDriver())
	assert.False(t, StatusCancelled.HasDriver())
}

func TestClearDriver(t *testing.T) {
	driverID := uint(7)
	staffID := uint(3)
	b := Booking{DriverID: &driverID, AssignedBy: &staffID}
	b.ClearDriver()
	assert.Nil(t, b.DriverID)
	assert.Nil(t, b.AssignedBy)
}
