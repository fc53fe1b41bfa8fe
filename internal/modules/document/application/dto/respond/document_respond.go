package respond

import "time"

type DocumentItem struct {
	Uuid       string     `json:"uuid"`
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	FileName   string     `json:"fileName"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	EmployeeId *string    `json:"employeeId"`
	UploadedBy string     `json:"uploadedBy"`
	CreatedAt  time.Time  `json:"createdAt"`
}
