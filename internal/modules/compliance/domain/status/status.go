package status

import (
	"math"
	"time"
)

// Status 合规三色状态，严格优先级 RED > YELLOW > GREEN
type Status string

const (
	Green  Status = "GREEN"
	Yellow Status = "YELLOW"
	Red    Status = "RED"
)

// DefaultWarningWindowDays 默认预警窗口
const DefaultWarningWindowDays = 30

// rank 越大越严重
func rank(s Status) int {
	switch s {
	case Red:
		return 2
	case Yellow:
		return 1
	default:
		return 0
	}
}

// DaysUntilExpiry 有符号剩余天数，负数表示已过期，无到期时间返回 nil
// 按整天向上取整：当天晚些时候到期也算"还剩 1 天"，避免跨午夜抖动
// 状态计算和文案展示都必须用这一个函数，保证符号和数值一致
func DaysUntilExpiry(expiresAt *time.Time, now time.Time) *int {
	if expiresAt == nil {
		return nil
	}
	days := int(math.Ceil(expiresAt.Sub(now).Hours() / 24))
	return &days
}

// DaysExpired 已过期天数（正整数，按整天向上取整）
func DaysExpired(expiresAt time.Time, now time.Time) int {
	days := int(math.Ceil(now.Sub(expiresAt).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// ForExpiry 根据到期时间推导状态
// 无到期时间 => GREEN；已过期 => RED；
// 剩余天数在 [0, warningWindowDays] 内（含边界）=> YELLOW；其余 => GREEN
// now 永远由调用方显式传入，本包不读系统时钟
func ForExpiry(expiresAt *time.Time, warningWindowDays int, now time.Time) Status {
	if expiresAt == nil {
		return Green
	}
	if expiresAt.Before(now) {
		return Red
	}
	days := *DaysUntilExpiry(expiresAt, now)
	if days >= 0 && days <= warningWindowDays {
		return Yellow
	}
	return Green
}

// Worst 返回最差状态，空序列 => GREEN
func Worst(statuses []Status) Status {
	worst := Green
	for _, s := range statuses {
		if rank(s) > rank(worst) {
			worst = s
		}
	}
	return worst
}

// Summary 状态计数，恒有 Green+Yellow+Red == Total
type Summary struct {
	Green  int `json:"green"`
	Yellow int `json:"yellow"`
	Red    int `json:"red"`
	Total  int `json:"total"`
}

// Add 计入一个状态
func (s *Summary) Add(st Status) {
	switch st {
	case Red:
		s.Red++
	case Yellow:
		s.Yellow++
	default:
		s.Green++
	}
	s.Total++
}

// CalculateSummary 汇总一组状态
func CalculateSummary(statuses []Status) Summary {
	var summary Summary
	for _, s := range statuses {
		summary.Add(s)
	}
	return summary
}
