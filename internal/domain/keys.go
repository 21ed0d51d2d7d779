package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// Roles allowed through the staff API
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)
