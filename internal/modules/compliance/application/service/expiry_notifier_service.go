package service

import (
	"errors"
	"fmt"

	documentEntity "ComplyLink/internal/modules/document/domain/entity"
	notificationRequest "ComplyLink/internal/modules/notification/application/dto/request"
	notificationService "ComplyLink/internal/modules/notification/application/service"
	notificationEntity "ComplyLink/internal/modules/notification/domain/entity"
	orgRepository "ComplyLink/internal/modules/org/domain/repository"
	userRepository "ComplyLink/internal/modules/user/domain/repository"
	"ComplyLink/pkg/email"
	"ComplyLink/pkg/zlog"

	"gorm.io/gorm"
)

// managerFanoutMaxDays 阈值小于等于该值时额外通知组织内全部合规管理角色
const managerFanoutMaxDays = 7

// FanoutResult 单个文档的分发结果，只统计成功的发送
type FanoutResult struct {
	NotificationsSent int
	EmailsSent        int
}

// recipientAttempt 单个接收人的发送结果
// 站内通知和邮件各自独立尝试，一方失败不影响另一方
type recipientAttempt struct {
	notificationOK bool
	emailOK        bool
}

// ExpiryNotifierService 到期通知分发
// 任何接收人级别的失败只记日志计数，绝不中断剩余分发
type ExpiryNotifierService interface {
	NotifyExpiringDocument(doc *documentEntity.Document, warningDays int, organizationId string) FanoutResult
}

type expiryNotifierServiceImpl struct {
	employeeRepo    orgRepository.EmployeeRepository
	orgRepo         orgRepository.OrganizationRepository
	userRepo        userRepository.UserInfoRepository
	notificationSvc notificationService.NotificationService
	emailSender     email.Sender
}

// NewExpiryNotifierService 构造函数
func NewExpiryNotifierService(
	employeeRepo orgRepository.EmployeeRepository,
	orgRepo orgRepository.OrganizationRepository,
	userRepo userRepository.UserInfoRepository,
	notificationSvc notificationService.NotificationService,
	emailSender email.Sender,
) ExpiryNotifierService {
	return &expiryNotifierServiceImpl{
		employeeRepo:    employeeRepo,
		orgRepo:         orgRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		emailSender:     emailSender,
	}
}

// urgencyLabel 仅用于消息文案
func urgencyLabel(warningDays int) string {
	switch {
	case warningDays <= 1:
		return "Today"
	case warningDays <= 7:
		return "This Week"
	case warningDays <= 14:
		return "Soon"
	default:
		return "In 30 Days"
	}
}

func (s *expiryNotifierServiceImpl) NotifyExpiringDocument(doc *documentEntity.Document, warningDays int, organizationId string) FanoutResult {
	var result FanoutResult
	if doc == nil {
		return result
	}

	orgName := ""
	if org, err := s.orgRepo.GetOrganizationByUuid(organizationId); err == nil {
		orgName = org.Name
	}

	label := urgencyLabel(warningDays)
	message := fmt.Sprintf("Document \"%s\" expires in %d day(s) (%s). Please renew it before the deadline.",
		doc.Title, warningDays, label)

	// 1. 通知被指派员工（前提：员工存在且关联了登录账号）
	if doc.EmployeeId != nil && *doc.EmployeeId != "" {
		attempt := s.notifyAssignee(doc, warningDays, organizationId, orgName, message)
		if attempt.notificationOK {
			result.NotificationsSent++
		}
		if attempt.emailOK {
			result.EmailsSent++
		}
	}

	// 2. 紧急阈值额外通知全部合规管理角色
	if warningDays <= managerFanoutMaxDays {
		managers, err := s.userRepo.GetActiveManagersByOrganization(organizationId)
		if err != nil {
			zlog.Error(fmt.Sprintf("manager lookup failed: org=%s doc=%s days=%d err=%s",
				organizationId, doc.Uuid, warningDays, err.Error()))
			return result
		}
		alertMessage := fmt.Sprintf("Document \"%s\" expires in %d day(s) (%s). Action required.",
			doc.Title, warningDays, label)
		for i := range managers {
			attempt := s.notifyRecipient(doc, warningDays, organizationId, orgName,
				managers[i].Uuid, managers[i].FirstName, managers[i].Email,
				notificationEntity.TypeAlert, "Urgent: Document Expiring", alertMessage)
			if attempt.notificationOK {
				result.NotificationsSent++
			}
			if attempt.emailOK {
				result.EmailsSent++
			}
		}
	}

	return result
}

// notifyAssignee 解析文档指派的员工并分发
func (s *expiryNotifierServiceImpl) notifyAssignee(doc *documentEntity.Document, warningDays int, organizationId string, orgName string, message string) recipientAttempt {
	employee, err := s.employeeRepo.GetEmployeeByUuid(*doc.EmployeeId, organizationId)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zlog.Error(fmt.Sprintf("assignee lookup failed: org=%s doc=%s err=%s",
				organizationId, doc.Uuid, err.Error()))
		}
		return recipientAttempt{}
	}
	if employee.UserId == nil || *employee.UserId == "" {
		// 员工没有登录账号，站内通知无处可送
		return recipientAttempt{}
	}

	emailAddr := employee.Email
	firstName := employee.FirstName
	if briefs, err := s.userRepo.GetUserBriefByUuids([]string{*employee.UserId}); err == nil && len(briefs) > 0 {
		if briefs[0].Email != "" {
			emailAddr = briefs[0].Email
		}
		if briefs[0].FirstName != "" {
			firstName = briefs[0].FirstName
		}
	}

	return s.notifyRecipient(doc, warningDays, organizationId, orgName,
		*employee.UserId, firstName, emailAddr,
		notificationEntity.TypeReminder, "Document Expiring", message)
}

// notifyRecipient 对单个接收人执行一次站内通知 + 一次邮件尝试
func (s *expiryNotifierServiceImpl) notifyRecipient(doc *documentEntity.Document, warningDays int, organizationId string, orgName string,
	userId string, firstName string, emailAddr string, notifType string, title string, message string) recipientAttempt {

	var attempt recipientAttempt
	uid := userId

	_, err := s.notificationSvc.CreateNotification(organizationId, notificationService.CreatorSystem,
		notificationRequest.CreateNotificationRequest{
			Title:   title,
			Message: message,
			Type:    notifType,
			UserId:  &uid,
			Metadata: map[string]interface{}{
				"documentId":  doc.Uuid,
				"warningDays": warningDays,
				"expiresAt":   doc.ExpiresAt,
			},
		})
	if err != nil {
		zlog.Error(fmt.Sprintf("notification create failed: org=%s doc=%s days=%d user=%s err=%s",
			organizationId, doc.Uuid, warningDays, userId, err.Error()))
	} else {
		attempt.notificationOK = true
	}

	// 邮件失败不回滚已创建的站内通知
	if emailAddr != "" {
		err = s.emailSender.SendComplianceReminder(emailAddr, message, email.ReminderInfo{
			FirstName:        firstName,
			OrganizationName: orgName,
		})
		if err != nil {
			zlog.Error(fmt.Sprintf("email send failed: org=%s doc=%s days=%d to=%s err=%s",
				organizationId, doc.Uuid, warningDays, emailAddr, err.Error()))
		} else {
			attempt.emailOK = true
		}
	}

	return attempt
}
