package email

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// ReminderInfo 合规提醒邮件的个性化字段
type ReminderInfo struct {
	FirstName        string
	OrganizationName string
}

// Sender 邮件发送接口，合规提醒的出口
// 实现方自带超时/重试策略，调用方只关心成败
type Sender interface {
	SendComplianceReminder(toAddress string, messageBody string, info ReminderInfo) error
}

// ==================== SMTP 实现 ====================

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) (Sender, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, errors.New("smtp host or from is empty")
	}
	return &smtpSender{cfg: cfg}, nil
}

func (s *smtpSender) SendComplianceReminder(toAddress string, messageBody string, info ReminderInfo) error {
	if strings.TrimSpace(toAddress) == "" {
		return errors.New("email recipient is empty")
	}

	greeting := "Hello"
	if info.FirstName != "" {
		greeting = "Hello " + info.FirstName
	}
	subject := "Compliance Reminder"
	if info.OrganizationName != "" {
		subject = fmt.Sprintf("Compliance Reminder - %s", info.OrganizationName)
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + toAddress,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		greeting + ",",
		"",
		messageBody,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{toAddress}, []byte(msg))
}

// ==================== Noop 实现 ====================

// NewNoopSender 空实现，未配置邮件服务时使用
func NewNoopSender() Sender {
	return &noopSender{}
}

type noopSender struct{}

func (n *noopSender) SendComplianceReminder(string, string, ReminderInfo) error {
	return nil
}
