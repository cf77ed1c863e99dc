package authz

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleTeamLead Role = "team_lead"
	RoleRep      Role = "rep"
	RolePartTime Role = "part_time"
	RoleViewer   Role = "viewer"
)

type Action string

const (
	ActionRequestLead        Action = "request_lead"
	ActionUpdateLead         Action = "update_lead"
	ActionAssignLead         Action = "assign_lead"
	ActionCreateBooking      Action = "create_booking"
	ActionMarkCommissionPaid Action = "mark_commission_paid"
	ActionViewAllRecords     Action = "view_all_records"
	ActionManageUsers        Action = "manage_users"
	ActionPostAnnouncement   Action = "post_announcement"
)

// rules is the single source of truth for role permissions.
// Roles and actions not listed here are denied.
var rules = map[Action]map[Role]bool{
	ActionRequestLead:        {RoleAdmin: true, RoleTeamLead: true, RoleRep: true, RolePartTime: true},
	ActionUpdateLead:         {RoleAdmin: true, RoleTeamLead: true, RoleRep: true, RolePartTime: true},
	ActionAssignLead:         {RoleAdmin: true},
	ActionCreateBooking:      {RoleAdmin: true, RoleTeamLead: true, RoleRep: true, RolePartTime: true},
	ActionMarkCommissionPaid: {RoleAdmin: true},
	ActionViewAllRecords:     {RoleAdmin: true},
	ActionManageUsers:        {RoleAdmin: true},
	ActionPostAnnouncement:   {RoleAdmin: true, RoleTeamLead: true},
}

func CanPerform(role Role, action Action) bool {
	return rules[action][role]
}

func IsKnownRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleTeamLead, RoleRep, RolePartTime, RoleViewer:
		return true
	}
	return false
}
