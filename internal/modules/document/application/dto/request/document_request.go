package request

import "time"

type CreateDocumentRequest struct {
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	FileName   string     `json:"fileName"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	EmployeeId *string    `json:"employeeId"`
}

type UpdateDocumentRequest struct {
	Uuid       string     `json:"uuid"`
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	FileName   string     `json:"fileName"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	EmployeeId *string    `json:"employeeId"`
}

type DeleteDocumentRequest struct {
	Uuid string `json:"uuid"`
}

type ListDocumentsRequest struct {
	Type       string `json:"type"`
	EmployeeId string `json:"employeeId"`
}
