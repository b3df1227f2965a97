// Package authz centralizes role-to-operation permissions as a single
// declarative table so they can be tested without any HTTP wiring.
// Ownership rules that depend on row data (a driver completing only
// their own assignment) stay with the controllers.
package authz

import "med_transport/internal/models"

// Action names an operation a route exposes.
type Action string

const (
	BookingCreate      Action = "booking:create"
	BookingList        Action = "booking:list"
	BookingRead        Action = "booking:read"
	BookingUpdate      Action = "booking:update"
	BookingCancel      Action = "booking:cancel"
	BookingAssign      Action = "booking:assign"
	BookingAssignments Action = "booking:assignments"
	BookingComplete    Action = "booking:complete"
	PatientManage      Action = "patient:manage"
	UserRead           Action = "user:read"
	UserManage         Action = "user:manage"
)

// anyRole marks an action open to every authenticated user.
var anyRole = []string(nil)

var permissions = map[Action][]string{
	BookingCreate:      anyRole,
	BookingRead:        anyRole,
	PatientManage:      anyRole,
	BookingList:        {models.RoleStaff, models.RoleAdmin},
	BookingUpdate:      {models.RoleStaff, models.RoleAdmin},
	BookingCancel:      {models.RoleStaff, models.RoleAdmin},
	BookingAssign:      {models.RoleStaff, models.RoleAdmin},
	BookingAssignments: {models.RoleDriver},
	BookingComplete:    {models.RoleDriver},
	UserRead:           {models.RoleStaff, models.RoleAdmin, models.RoleExecutive, models.RolePublicHealthOfficer},
	UserManage:         {models.RoleAdmin},
}

// Allowed reports whether a user with the given role may perform action.
// Unknown actions are denied.
func Allowed(role string, action Action) bool {
	roles, ok := permissions[action]
	if !ok {
		return false
	}
	if roles == nil {
		return models.ValidRole(role)
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
