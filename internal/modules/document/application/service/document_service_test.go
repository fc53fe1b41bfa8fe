package service

import (
	"errors"
	"testing"
	"time"

	"ComplyLink/internal/modules/document/application/dto/request"
	"ComplyLink/internal/modules/document/domain/entity"
	"ComplyLink/internal/modules/document/domain/repository"
	orgEntity "ComplyLink/internal/modules/org/domain/entity"
	userEntity "ComplyLink/internal/modules/user/domain/entity"
	"ComplyLink/pkg/xerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDocRepo struct {
	docs    []entity.Document
	deleted []string
}

func (f *fakeDocRepo) CreateDocument(doc *entity.Document) error {
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeDocRepo) UpdateDocument(doc *entity.Document) error {
	for i := range f.docs {
		if f.docs[i].Uuid == doc.Uuid {
			f.docs[i] = *doc
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDocRepo) DeleteDocument(uuid string, organizationId string) error {
	f.deleted = append(f.deleted, uuid)
	return nil
}

func (f *fakeDocRepo) GetDocumentByUuid(uuid string, organizationId string) (*entity.Document, error) {
	for i := range f.docs {
		if f.docs[i].Uuid == uuid && f.docs[i].OrganizationId == organizationId {
			d := f.docs[i]
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDocRepo) ListDocumentsByOrganization(organizationId string, filter repository.DocumentFilter) ([]entity.Document, error) {
	var result []entity.Document
	for i := range f.docs {
		d := f.docs[i]
		if d.OrganizationId != organizationId {
			continue
		}
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.EmployeeId != "" && (d.EmployeeId == nil || *d.EmployeeId != filter.EmployeeId) {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

func (f *fakeDocRepo) ListDocumentsByEmployee(employeeId string) ([]entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocRepo) ListAssignedDocumentsByOrganization(organizationId string) ([]entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocRepo) CountDocumentsByOrganization(organizationId string) (int64, error) {
	return int64(len(f.docs)), nil
}

func (f *fakeDocRepo) ListDocumentsExpiringInWindow(organizationId string, startInclusive time.Time, endExclusive time.Time) ([]entity.Document, error) {
	return nil, errors.New("not implemented")
}

type fakeEmpRepo struct {
	employees []orgEntity.Employee
}

func (f *fakeEmpRepo) CreateEmployee(employee *orgEntity.Employee) error { return nil }
func (f *fakeEmpRepo) UpdateEmployee(employee *orgEntity.Employee) error {
	return errors.New("not implemented")
}
func (f *fakeEmpRepo) DeleteEmployee(uuid string, organizationId string) error {
	return errors.New("not implemented")
}

func (f *fakeEmpRepo) GetEmployeeByUuid(uuid string, organizationId string) (*orgEntity.Employee, error) {
	for i := range f.employees {
		if f.employees[i].Uuid == uuid && f.employees[i].OrganizationId == organizationId {
			e := f.employees[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmpRepo) GetEmployeeByUserId(userId string, organizationId string) (*orgEntity.Employee, error) {
	for i := range f.employees {
		if f.employees[i].UserId != nil && *f.employees[i].UserId == userId && f.employees[i].OrganizationId == organizationId {
			e := f.employees[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmpRepo) ListEmployeesByOrganization(organizationId string) ([]orgEntity.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmpRepo) CountEmployeesByOrganization(organizationId string) (int64, error) {
	return int64(len(f.employees)), nil
}

func strPtr(s string) *string {
	return &s
}

func TestCreateDocument_ManagerOnly(t *testing.T) {
	svc := NewDocumentService(&fakeDocRepo{}, &fakeEmpRepo{})

	_, err := svc.CreateDocument("org-1", userEntity.RoleEmployee, "user-1", request.CreateDocumentRequest{
		Title: "Contract",
	})
	assert.Equal(t, xerr.ErrForbidden, err)
}

func TestCreateDocument_Success(t *testing.T) {
	docRepo := &fakeDocRepo{}
	empRepo := &fakeEmpRepo{employees: []orgEntity.Employee{
		{Uuid: "emp-1", OrganizationId: "org-1"},
	}}
	svc := NewDocumentService(docRepo, empRepo)

	expires := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	item, err := svc.CreateDocument("org-1", userEntity.RoleHR, "hr-user", request.CreateDocumentRequest{
		Title:      "Work Contract",
		Type:       entity.TypeContract,
		EmployeeId: strPtr("emp-1"),
		ExpiresAt:  &expires,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.Uuid)
	assert.Equal(t, "hr-user", item.UploadedBy)
	require.Len(t, docRepo.docs, 1)
	assert.Equal(t, "org-1", docRepo.docs[0].OrganizationId)
}

func TestCreateDocument_DefaultTypeIsOther(t *testing.T) {
	docRepo := &fakeDocRepo{}
	svc := NewDocumentService(docRepo, &fakeEmpRepo{})

	item, err := svc.CreateDocument("org-1", userEntity.RoleAdmin, "admin-user", request.CreateDocumentRequest{
		Title: "Misc",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TypeOther, item.Type)
}

func TestCreateDocument_InvalidType(t *testing.T) {
	svc := NewDocumentService(&fakeDocRepo{}, &fakeEmpRepo{})

	_, err := svc.CreateDocument("org-1", userEntity.RoleHR, "hr-user", request.CreateDocumentRequest{
		Title: "Contract",
		Type:  "SCROLL",
	})
	require.Error(t, err)
	var codeErr *xerr.CodeError
	require.True(t, errors.As(err, &codeErr))
	assert.Equal(t, xerr.BadRequest, codeErr.Code)
}

func TestCreateDocument_UnknownAssigneeRejected(t *testing.T) {
	svc := NewDocumentService(&fakeDocRepo{}, &fakeEmpRepo{})

	_, err := svc.CreateDocument("org-1", userEntity.RoleHR, "hr-user", request.CreateDocumentRequest{
		Title:      "Contract",
		EmployeeId: strPtr("emp-ghost"),
	})
	require.Error(t, err)
	var codeErr *xerr.CodeError
	require.True(t, errors.As(err, &codeErr))
	assert.Equal(t, xerr.NotFound, codeErr.Code)
}

func TestUpdateDocument_NotFound(t *testing.T) {
	svc := NewDocumentService(&fakeDocRepo{}, &fakeEmpRepo{})

	err := svc.UpdateDocument("org-1", userEntity.RoleHR, request.UpdateDocumentRequest{
		Uuid:  "doc-missing",
		Title: "Renamed",
	})
	assert.Equal(t, xerr.ErrNotFound, err)
}

func TestUpdateDocument_Success(t *testing.T) {
	docRepo := &fakeDocRepo{docs: []entity.Document{
		{Uuid: "doc-1", Title: "Old", Type: entity.TypeContract, OrganizationId: "org-1"},
	}}
	svc := NewDocumentService(docRepo, &fakeEmpRepo{})

	err := svc.UpdateDocument("org-1", userEntity.RoleHR, request.UpdateDocumentRequest{
		Uuid:  "doc-1",
		Title: "Renewed Contract",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renewed Contract", docRepo.docs[0].Title)
	// 未提交类型时保留原类型
	assert.Equal(t, entity.TypeContract, docRepo.docs[0].Type)
}

func TestDeleteDocument_Flow(t *testing.T) {
	docRepo := &fakeDocRepo{docs: []entity.Document{
		{Uuid: "doc-1", Title: "Contract", OrganizationId: "org-1"},
	}}
	svc := NewDocumentService(docRepo, &fakeEmpRepo{})

	assert.Equal(t, xerr.ErrForbidden, svc.DeleteDocument("org-1", userEntity.RoleEmployee, "doc-1"))
	assert.Equal(t, xerr.ErrNotFound, svc.DeleteDocument("org-1", userEntity.RoleHR, "doc-missing"))

	require.NoError(t, svc.DeleteDocument("org-1", userEntity.RoleHR, "doc-1"))
	assert.Equal(t, []string{"doc-1"}, docRepo.deleted)
}

func TestListDocuments_NonManagerScopedToSelf(t *testing.T) {
	docRepo := &fakeDocRepo{docs: []entity.Document{
		{Uuid: "doc-1", Title: "Mine", OrganizationId: "org-1", EmployeeId: strPtr("emp-1")},
		{Uuid: "doc-2", Title: "Other", OrganizationId: "org-1", EmployeeId: strPtr("emp-2")},
		{Uuid: "doc-3", Title: "Org Wide", OrganizationId: "org-1"},
	}}
	empRepo := &fakeEmpRepo{employees: []orgEntity.Employee{
		{Uuid: "emp-1", OrganizationId: "org-1", UserId: strPtr("user-1")},
	}}
	svc := NewDocumentService(docRepo, empRepo)

	items, err := svc.ListDocuments("org-1", userEntity.RoleEmployee, "user-1", request.ListDocumentsRequest{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "doc-1", items[0].Uuid)
}

func TestListDocuments_UnlinkedUserGetsEmptyList(t *testing.T) {
	svc := NewDocumentService(&fakeDocRepo{}, &fakeEmpRepo{})

	items, err := svc.ListDocuments("org-1", userEntity.RoleEmployee, "user-unlinked", request.ListDocumentsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListDocuments_ManagerFilterByType(t *testing.T) {
	docRepo := &fakeDocRepo{docs: []entity.Document{
		{Uuid: "doc-1", Title: "Contract", Type: entity.TypeContract, OrganizationId: "org-1"},
		{Uuid: "doc-2", Title: "Cert", Type: entity.TypeCertification, OrganizationId: "org-1"},
	}}
	svc := NewDocumentService(docRepo, &fakeEmpRepo{})

	items, err := svc.ListDocuments("org-1", userEntity.RoleHR, "hr-user", request.ListDocumentsRequest{
		Type: entity.TypeCertification,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "doc-2", items[0].Uuid)
}
