package entity

// 角色常量
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleHR         = "HR"
	RoleEmployee   = "EMPLOYEE"
)

// IsComplianceManager 合规管理角色判定，权限边界统一收敛在这里：
// 管理角色可以查看全组织的合规视图并接收紧急到期告警
func IsComplianceManager(role string) bool {
	switch role {
	case RoleHR, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsValidRole 注册/修改时的角色合法性校验
func IsValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleHR, RoleEmployee:
		return true
	default:
		return false
	}
}
