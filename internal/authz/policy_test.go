package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerformMatchesTable(t *testing.T) {
	// expected[action] lists the roles that may perform it; every other
	// role must be denied.
	expected := map[Action][]Role{
		ActionRequestLead:        {RoleAdmin, RoleTeamLead, RoleRep, RolePartTime},
		ActionUpdateLead:         {RoleAdmin, RoleTeamLead, RoleRep, RolePartTime},
		ActionAssignLead:         {RoleAdmin},
		ActionCreateBooking:      {RoleAdmin, RoleTeamLead, RoleRep, RolePartTime},
		ActionMarkCommissionPaid: {RoleAdmin},
		ActionViewAllRecords:     {RoleAdmin},
		ActionManageUsers:        {RoleAdmin},
		ActionPostAnnouncement:   {RoleAdmin, RoleTeamLead},
	}
	allRoles := []Role{RoleAdmin, RoleTeamLead, RoleRep, RolePartTime, RoleViewer}

	for action, allowed := range expected {
		allowedSet := map[Role]bool{}
		for _, r := range allowed {
			allowedSet[r] = true
		}
		for _, role := range allRoles {
			got := CanPerform(role, action)
			assert.Equal(t, allowedSet[role], got, "role=%s action=%s", role, action)
		}
	}
}

func TestViewerDeniedEverything(t *testing.T) {
	actions := []Action{
		ActionRequestLead, ActionUpdateLead, ActionAssignLead,
		ActionCreateBooking, ActionMarkCommissionPaid,
		ActionViewAllRecords, ActionManageUsers, ActionPostAnnouncement,
	}
	for _, a := range actions {
		assert.False(t, CanPerform(RoleViewer, a), "viewer must be denied %s", a)
	}
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	assert.False(t, CanPerform(Role("intern"), ActionRequestLead))
	assert.False(t, CanPerform(Role(""), ActionViewAllRecords))
	assert.False(t, CanPerform(RoleAdmin, Action("delete_everything")))
}
