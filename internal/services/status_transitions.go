package services

import "staffhub/internal/models"

// Allowed lead status moves for the plain update path.
// "Assigned" never appears as a target here: assignment goes through the
// dedicated assign flow, which also sets assigned_to.
var LeadTransitions = map[string]map[string]bool{
	models.LeadStatusRequested: {},
	models.LeadStatusNew: {
		models.LeadStatusContacted: true,
		models.LeadStatusReplied:   true,
		models.LeadStatusBooked:    true,
		models.LeadStatusNoAnswer:  true,
	},
	models.LeadStatusAssigned: {
		models.LeadStatusContacted: true,
		models.LeadStatusReplied:   true,
		models.LeadStatusBooked:    true,
		models.LeadStatusNoAnswer:  true,
	},
	// working statuses are freely inter-transitionable
	models.LeadStatusContacted: {
		models.LeadStatusReplied:  true,
		models.LeadStatusBooked:   true,
		models.LeadStatusNoAnswer: true,
	},
	models.LeadStatusReplied: {
		models.LeadStatusContacted: true,
		models.LeadStatusBooked:    true,
		models.LeadStatusNoAnswer:  true,
	},
	models.LeadStatusBooked: {
		models.LeadStatusContacted: true,
		models.LeadStatusReplied:   true,
		models.LeadStatusNoAnswer:  true,
	},
	models.LeadStatusNoAnswer: {
		models.LeadStatusContacted: true,
		models.LeadStatusReplied:   true,
		models.LeadStatusBooked:    true,
	},
}

// assignable lists statuses a lead may be in when an admin assigns it.
var assignable = map[string]bool{
	models.LeadStatusRequested: true,
	models.LeadStatusNew:       true,
}

func canTransition(current, to string) bool {
	if current == to {
		return true // no-op update
	}
	nexts, ok := LeadTransitions[current]
	if !ok {
		return false
	}
	return nexts[to]
}

func canAssign(current string) bool {
	return assignable[current]
}
