package request

type RegisterRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationId string `json:"organizationId"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
