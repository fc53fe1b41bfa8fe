package respond

type OrganizationItem struct {
	Uuid     string `json:"uuid"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

type EmployeeItem struct {
	Uuid      string  `json:"uuid"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Position  string  `json:"position"`
	UserId    *string `json:"userId"`
}
