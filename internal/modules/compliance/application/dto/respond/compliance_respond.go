package respond

import (
	"time"

	"ComplyLink/internal/modules/compliance/domain/status"
)

type DocumentComplianceItem struct {
	Uuid            string        `json:"uuid"`
	Title           string        `json:"title"`
	Status          status.Status `json:"status"`
	ExpiresAt       *time.Time    `json:"expiresAt"`
	DaysUntilExpiry *int          `json:"daysUntilExpiry"`
}

type EmployeeComplianceRespond struct {
	EmployeeId string                   `json:"employeeId"`
	Name       string                   `json:"name"`
	Status     status.Status            `json:"status"`
	Documents  []DocumentComplianceItem `json:"documents"`
}

type EmployeeStatusItem struct {
	EmployeeId string        `json:"employeeId"`
	Name       string        `json:"name"`
	Status     status.Status `json:"status"`
}

type OrganizationComplianceRespond struct {
	OrganizationId string               `json:"organizationId"`
	Summary        status.Summary       `json:"summary"`
	Employees      []EmployeeStatusItem `json:"employees"`
}

type TypeComplianceItem struct {
	DocumentType string                   `json:"documentType"`
	Summary      status.Summary           `json:"summary"`
	Documents    []DocumentComplianceItem `json:"documents"`
}

type ExpiredDocumentItem struct {
	Uuid        string    `json:"uuid"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	ExpiresAt   time.Time `json:"expiresAt"`
	DaysExpired int       `json:"daysExpired"`
}

type CriticalEmployeeItem struct {
	EmployeeId       string                `json:"employeeId"`
	Name             string                `json:"name"`
	ExpiredDocuments []ExpiredDocumentItem `json:"expiredDocuments"`
}

type ComplianceCounts struct {
	Green  int `json:"green"`
	Yellow int `json:"yellow"`
	Red    int `json:"red"`
}

type ComplianceMetricsRespond struct {
	TotalEmployees        int64            `json:"totalEmployees"`
	TotalDocuments        int64            `json:"totalDocuments"`
	ComplianceSummary     ComplianceCounts `json:"complianceSummary"`
	DocumentsExpiringSoon int              `json:"documentsExpiringSoon"`
	ExpiredDocuments      int              `json:"expiredDocuments"`
	ComplianceRate        int              `json:"complianceRate"`
}

type JobStatusRespond struct {
	Enabled     bool       `json:"enabled"`
	Running     bool       `json:"running"`
	Schedule    string     `json:"schedule"`
	WarningDays []int      `json:"warningDays"`
	NextRun     *time.Time `json:"nextRun"`
}

type JobTriggerRespond struct {
	Triggered bool   `json:"triggered"`
	Message   string `json:"message"`
}
