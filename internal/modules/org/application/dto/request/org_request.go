package request

type CreateOrganizationRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

type CreateEmployeeRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Position  string  `json:"position"`
	UserId    *string `json:"userId"`
}

type UpdateEmployeeRequest struct {
	Uuid      string  `json:"uuid"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Position  string  `json:"position"`
	UserId    *string `json:"userId"`
}

type DeleteEmployeeRequest struct {
	Uuid string `json:"uuid"`
}
