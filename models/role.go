package models

// Role is the closed set of actor roles. Every policy decision switches on
// this type; stringly-typed role checks are not allowed outside parsing.
type Role int

const (
	RoleStudent Role = iota
	RoleTeacher
	RoleHOD
	RoleAdmin
)

// roleNames maps roles to their canonical external names.
var roleNames = map[Role]string{
	RoleStudent: "Student",
	RoleTeacher: "Teacher",
	RoleHOD:     "HOD",
	RoleAdmin:   "Admin",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Student"
}

// ParseRole parses a role name. Unknown names report ok=false; callers treat
// an actor without a recognized role as least-privileged (Student).
func ParseRole(s string) (Role, bool) {
	for role, name := range roleNames {
		if name == s {
			return role, true
		}
	}
	return RoleStudent, false
}
