package respond

type RegisterRespond struct {
	Uuid           string `json:"uuid"`
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationId string `json:"organizationId"`
}

type LoginRespond struct {
	Uuid           string `json:"uuid"`
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Role           string `json:"role"`
	OrganizationId string `json:"organizationId"`
	Token          string `json:"token"`
}

type UserInfoRespond struct {
	Uuid           string `json:"uuid"`
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationId string `json:"organizationId"`
	Status         int8   `json:"status"`
}
