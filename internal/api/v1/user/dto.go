package user

// UpsertUserRequest carries the profile sent on login. Fields are not
// required: missing values are stored as-is, matching the permissive upsert
// contract.
type UpsertUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Role  string `json:"role"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
