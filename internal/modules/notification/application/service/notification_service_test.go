package service

import (
	"errors"
	"testing"

	"ComplyLink/internal/modules/notification/application/dto/request"
	"ComplyLink/internal/modules/notification/domain/entity"
	userEntity "ComplyLink/internal/modules/user/domain/entity"
	"ComplyLink/pkg/xerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	created     []entity.Notification
	markedRead  []string
	unreadCount int64
	createErr   error
}

func (f *fakeNotificationRepo) CreateNotification(notif *entity.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *notif)
	return nil
}

func (f *fakeNotificationRepo) ListNotificationsForUser(organizationId string, userId string, limit int) ([]entity.Notification, error) {
	var result []entity.Notification
	for i := range f.created {
		n := f.created[i]
		if n.OrganizationId != organizationId {
			continue
		}
		if n.UserId == nil || *n.UserId == userId {
			result = append(result, n)
		}
	}
	return result, nil
}

func (f *fakeNotificationRepo) MarkNotificationRead(uuid string, userId string) error {
	f.markedRead = append(f.markedRead, uuid)
	return nil
}

func (f *fakeNotificationRepo) CountUnreadForUser(organizationId string, userId string) (int64, error) {
	return f.unreadCount, nil
}

func strPtr(s string) *string {
	return &s
}

func TestCreateNotification_SystemCreatorAllowed(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	item, err := svc.CreateNotification("org-1", CreatorSystem, request.CreateNotificationRequest{
		Title:   "Document Expiring",
		Message: "renew it",
		Type:    entity.TypeReminder,
		UserId:  strPtr("user-1"),
		Metadata: map[string]interface{}{
			"documentId": "doc-1",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Document Expiring", item.Title)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "org-1", repo.created[0].OrganizationId)
	assert.Equal(t, int8(entity.StatusUnread), repo.created[0].Status)
	assert.NotEmpty(t, repo.created[0].Uuid)
	assert.Equal(t, "doc-1", repo.created[0].Metadata["documentId"])
}

func TestCreateNotification_ManagerRolesAllowed(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	for _, role := range []string{userEntity.RoleHR, userEntity.RoleAdmin, userEntity.RoleSuperAdmin} {
		_, err := svc.CreateNotification("org-1", role, request.CreateNotificationRequest{
			Title: "Team Update",
		})
		require.NoError(t, err)
	}
	assert.Len(t, repo.created, 3)
}

func TestCreateNotification_EmployeeForbidden(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{}, nil)

	_, err := svc.CreateNotification("org-1", userEntity.RoleEmployee, request.CreateNotificationRequest{
		Title: "hi",
	})
	assert.Equal(t, xerr.ErrForbidden, err)
}

func TestCreateNotification_Validation(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{}, nil)

	_, err := svc.CreateNotification("org-1", CreatorSystem, request.CreateNotificationRequest{})
	assert.Equal(t, xerr.ErrParam, err)

	_, err = svc.CreateNotification("org-1", CreatorSystem, request.CreateNotificationRequest{
		Title: "x",
		Type:  "SHOUT",
	})
	require.Error(t, err)
	var codeErr *xerr.CodeError
	require.True(t, errors.As(err, &codeErr))
	assert.Equal(t, xerr.BadRequest, codeErr.Code)
}

func TestCreateNotification_DefaultTypeIsSystem(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	item, err := svc.CreateNotification("org-1", CreatorSystem, request.CreateNotificationRequest{
		Title: "Maintenance Window",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TypeSystem, item.Type)
}

func TestListMyNotifications_IncludesBroadcast(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	_, err := svc.CreateNotification("org-1", CreatorSystem, request.CreateNotificationRequest{
		Title: "Personal", UserId: strPtr("user-1"),
	})
	require.NoError(t, err)
	_, err = svc.CreateNotification("org-1", CreatorSystem, request.CreateNotificationRequest{
		Title: "Broadcast",
	})
	require.NoError(t, err)
	_, err = svc.CreateNotification("org-1", CreatorSystem, request.CreateNotificationRequest{
		Title: "Someone Else", UserId: strPtr("user-2"),
	})
	require.NoError(t, err)

	items, err := svc.ListMyNotifications("org-1", "user-1", 50)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestMarkRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	require.NoError(t, svc.MarkRead("org-1", "user-1", "notif-1"))
	assert.Equal(t, []string{"notif-1"}, repo.markedRead)

	assert.Equal(t, xerr.ErrParam, svc.MarkRead("org-1", "user-1", ""))
}

func TestUnreadCount_FallsBackToRepository(t *testing.T) {
	repo := &fakeNotificationRepo{unreadCount: 5}
	svc := NewNotificationService(repo, nil)

	count, err := svc.UnreadCount("org-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
