package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staffhub/internal/models"
)

func TestWorkingStatusesFreelyInterTransitionable(t *testing.T) {
	working := []string{
		models.LeadStatusContacted,
		models.LeadStatusReplied,
		models.LeadStatusBooked,
		models.LeadStatusNoAnswer,
	}
	for _, from := range working {
		for _, to := range working {
			assert.True(t, canTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestAssignedNeverReachableViaUpdate(t *testing.T) {
	all := []string{
		models.LeadStatusNew,
		models.LeadStatusRequested,
		models.LeadStatusAssigned,
		models.LeadStatusContacted,
		models.LeadStatusReplied,
		models.LeadStatusBooked,
		models.LeadStatusNoAnswer,
	}
	for _, from := range all {
		if from == models.LeadStatusAssigned {
			continue // same-status no-op is allowed
		}
		assert.False(t, canTransition(from, models.LeadStatusAssigned), "%s -> Assigned must go through assign", from)
	}
}

func TestRequestedOnlyWaitsForAssignment(t *testing.T) {
	targets := []string{
		models.LeadStatusContacted,
		models.LeadStatusReplied,
		models.LeadStatusBooked,
		models.LeadStatusNoAnswer,
		models.LeadStatusNew,
	}
	for _, to := range targets {
		assert.False(t, canTransition(models.LeadStatusRequested, to), "Requested -> %s", to)
	}
}

func TestAssignableStatuses(t *testing.T) {
	assert.True(t, canAssign(models.LeadStatusRequested))
	assert.True(t, canAssign(models.LeadStatusNew))
	assert.False(t, canAssign(models.LeadStatusAssigned))
	assert.False(t, canAssign(models.LeadStatusBooked))
	assert.False(t, canAssign("garbage"))
}

func TestSameStatusIsNoOp(t *testing.T) {
	assert.True(t, canTransition(models.LeadStatusBooked, models.LeadStatusBooked))
}
