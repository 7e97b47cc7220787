package handler

// --- Request types ---
// Constraints mirror the storefront's form schemas: well-formed email,
// password of at least 6 characters, role and country from the closed sets.

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type signupRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Role      string `json:"role"      validate:"required,oneof=FARMER BUYER ADMIN"`
	Country   string `json:"country"   validate:"required,oneof=KENYA UGANDA TANZANIA"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"       validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// messageResponse acknowledges operations that return no data.
type messageResponse struct {
	Message string `json:"message"`
}
