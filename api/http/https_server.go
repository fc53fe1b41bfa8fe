package http

import (
	"ComplyLink/internal/config"
	"ComplyLink/internal/initial"
	jwtMiddleware "ComplyLink/internal/middleware/jwt"
	complianceService "ComplyLink/internal/modules/compliance/application/service"
	"ComplyLink/internal/modules/compliance/infrastructure/mq"
	"ComplyLink/internal/modules/compliance/infrastructure/mq/kafka"
	complianceHandler "ComplyLink/internal/modules/compliance/interface/http"
	"ComplyLink/internal/modules/compliance/interface/scheduler"
	documentService "ComplyLink/internal/modules/document/application/service"
	documentPersistence "ComplyLink/internal/modules/document/infrastructure/persistence"
	documentHandler "ComplyLink/internal/modules/document/interface/http"
	notificationService "ComplyLink/internal/modules/notification/application/service"
	notificationPersistence "ComplyLink/internal/modules/notification/infrastructure/persistence"
	notificationHandler "ComplyLink/internal/modules/notification/interface/http"
	orgService "ComplyLink/internal/modules/org/application/service"
	orgPersistence "ComplyLink/internal/modules/org/infrastructure/persistence"
	orgHandler "ComplyLink/internal/modules/org/interface/http"
	"ComplyLink/internal/modules/user/application/service"
	userEntity "ComplyLink/internal/modules/user/domain/entity"
	"ComplyLink/internal/modules/user/infrastructure/persistence"
	userHandler "ComplyLink/internal/modules/user/interface/http"
	"ComplyLink/pkg/email"
	"ComplyLink/pkg/ssl"
	"ComplyLink/pkg/ws"
	"ComplyLink/pkg/zlog"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var GE *gin.Engine

// ScanJob 到期扫描任务，main 负责 Start/Stop
var ScanJob *scheduler.ExpiryScanJob

// EventPublisher 可空，main 退出时关闭
var EventPublisher mq.Publisher

func init() {
	GE = gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	GE.Use(cors.New(corsConfig))
	GE.Use(ssl.TlsHandler(config.GetConfig().MainConfig.Host, config.GetConfig().MainConfig.Port))

	conf := config.GetConfig()
	wsHub := ws.NewHub()

	userRepo := persistence.NewUserInfoRepository(initial.GormDB)
	orgRepo := orgPersistence.NewOrganizationRepository(initial.GormDB)
	employeeRepo := orgPersistence.NewEmployeeRepository(initial.GormDB)
	documentRepo := documentPersistence.NewDocumentRepository(initial.GormDB)
	notificationRepo := notificationPersistence.NewNotificationRepository(initial.GormDB)

	userSvc := service.NewUserInfoService(userRepo, orgRepo)
	organizationSvc := orgService.NewOrganizationService(orgRepo)
	employeeSvc := orgService.NewEmployeeService(employeeRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, employeeRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, wsHub)
	complianceSvc := complianceService.NewComplianceService(employeeRepo, documentRepo, conf.ComplianceConfig.WarningWindowDays)

	// 邮件：未启用时使用 Noop，通知落库不受影响
	var emailSender email.Sender
	if conf.EmailConfig.Enabled {
		sender, err := email.NewSMTPSender(email.SMTPConfig{
			Host:     conf.EmailConfig.Host,
			Port:     conf.EmailConfig.Port,
			Username: conf.EmailConfig.Username,
			Password: conf.EmailConfig.Password,
			From:     conf.EmailConfig.From,
		})
		if err != nil {
			zlog.Warn("SMTP 配置无效，降级为 Noop: " + err.Error())
			emailSender = email.NewNoopSender()
		} else {
			emailSender = sender
		}
	} else {
		emailSender = email.NewNoopSender()
	}

	// Kafka 事件发布，可选
	if conf.KafkaConfig.Enabled {
		publisher, err := kafka.NewSaramaPublisher(kafka.PublisherConfig{
			Brokers:  conf.KafkaConfig.Brokers,
			ClientID: conf.KafkaConfig.ClientID,
		})
		if err != nil {
			zlog.Warn("Kafka 连接失败，事件发布关闭: " + err.Error())
		} else {
			EventPublisher = publisher
		}
	}

	notifierSvc := complianceService.NewExpiryNotifierService(employeeRepo, orgRepo, userRepo, notificationSvc, emailSender)
	ScanJob = scheduler.NewExpiryScanJob(scheduler.Config{
		Enabled:     conf.ComplianceConfig.Enabled,
		Schedule:    conf.ComplianceConfig.ScanCron,
		WarningDays: conf.ComplianceConfig.WarningDays,
		Timezone:    conf.ComplianceConfig.Timezone,
		EventTopic:  conf.KafkaConfig.EventTopic,
	}, orgRepo, documentRepo, notifierSvc, EventPublisher)

	userH := userHandler.NewUserInfoHandler(userSvc)
	organizationH := orgHandler.NewOrganizationHandler(organizationSvc)
	employeeH := orgHandler.NewEmployeeHandler(employeeSvc)
	documentH := documentHandler.NewDocumentHandler(documentSvc)
	notificationH := notificationHandler.NewNotificationHandler(notificationSvc)
	wsH := notificationHandler.NewWsHandler(wsHub, userRepo)
	dashboardH := complianceHandler.NewDashboardHandler(complianceSvc)
	jobH := complianceHandler.NewJobHandler(ScanJob)

	GE.POST("/login", userH.Login)
	GE.POST("/register", userH.Register)
	GE.GET("/wss", wsH.Connect)

	authed := GE.Group("/")
	authed.Use(jwtMiddleware.Auth())
	authed.GET("/auth/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"uuid":     c.GetString("uuid"),
			"username": c.GetString("username"),
		})
	})
	authed.GET("/user/getMyInfo", userH.GetMyInfo)

	authed.POST("/org/createOrganization", organizationH.CreateOrganization)
	authed.GET("/org/getMyOrganization", organizationH.GetMyOrganization)
	authed.GET("/org/listOrganizations", organizationH.ListOrganizations)

	authed.POST("/employee/createEmployee", employeeH.CreateEmployee)
	authed.POST("/employee/updateEmployee", employeeH.UpdateEmployee)
	authed.POST("/employee/deleteEmployee", employeeH.DeleteEmployee)
	authed.GET("/employee/getEmployee/:employeeId", employeeH.GetEmployee)
	authed.GET("/employee/listEmployees", employeeH.ListEmployees)

	authed.POST("/document/createDocument", documentH.CreateDocument)
	authed.POST("/document/updateDocument", documentH.UpdateDocument)
	authed.POST("/document/deleteDocument", documentH.DeleteDocument)
	authed.GET("/document/getDocument/:documentId", documentH.GetDocument)
	authed.GET("/document/listDocuments", documentH.ListDocuments)

	authed.POST("/notification/createNotification", notificationH.CreateNotification)
	authed.GET("/notification/listMyNotifications", notificationH.ListMyNotifications)
	authed.POST("/notification/markRead", notificationH.MarkRead)
	authed.GET("/notification/unreadCount", notificationH.UnreadCount)

	authed.GET("/dashboard/compliance", dashboardH.GetOrganizationCompliance)
	authed.GET("/dashboard/compliance/types", dashboardH.GetComplianceByType)
	authed.GET("/dashboard/compliance/metrics", dashboardH.GetMetrics)
	authed.GET("/dashboard/compliance/critical", dashboardH.GetCriticalIssues)
	authed.GET("/dashboard/compliance/:employeeId", dashboardH.GetEmployeeCompliance)

	admin := authed.Group("/job")
	admin.Use(jwtMiddleware.RequireRole(userEntity.RoleAdmin, userEntity.RoleSuperAdmin))
	admin.POST("/expiryScan/run", jobH.RunNow)
	admin.GET("/expiryScan/status", jobH.GetStatus)
	admin.GET("/expiryScan/lastSummary", jobH.GetLastSummary)
}
