package handler

// errorResponse documents the standard error envelope rendered by the
// central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// createUserRequest is the admin-create shape. It shares the validated
// field subset with registerRequest but additionally accepts a role.
type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=10"`
	Age      *int   `json:"age,omitempty" validate:"omitempty,gte=0"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// updateUserRequest uses pointers throughout: absent fields are left
// unchanged (partial overwrite).
type updateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=10"`
	Age      *int    `json:"age,omitempty"      validate:"omitempty,gte=0"`
	Role     *string `json:"role,omitempty"     validate:"omitempty,oneof=admin user"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age,omitempty"`
	Role  string `json:"role"`
}

type messageResponse struct {
	Message string `json:"message"`
}
