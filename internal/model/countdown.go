package model

import (
	"fmt"
	"strings"
	"time"
)

// Countdown 距计划时间的整数时长分解
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Overdue bool
}

// CountdownUntil 以 now 为基准分解 target 的剩余时长：
// 整天数、剩余整小时、剩余整分钟；剩余 <= 0 记为 Overdue。
func CountdownUntil(target, now time.Time) Countdown {
	remaining := target.Sub(now)
	if remaining <= 0 {
		return Countdown{Overdue: true}
	}
	rem := remaining % (24 * time.Hour)
	return Countdown{
		Days:    int(remaining / (24 * time.Hour)),
		Hours:   int(rem / time.Hour),
		Minutes: int(rem % time.Hour / time.Minute),
	}
}

// Short 列表用缩写形式 "1d 2h 5m"（零值分量省略），全零 "<1m"，过期 "OVERDUE"
func (c Countdown) Short() string {
	if c.Overdue {
		return "OVERDUE"
	}
	parts := make([]string, 0, 3)
	if c.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", c.Days))
	}
	if c.Hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", c.Hours))
	}
	if c.Minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", c.Minutes))
	}
	if len(parts) == 0 {
		return "<1m"
	}
	return strings.Join(parts, " ")
}

// Long 创建确认用完整形式 "1 day, 2 hours, 5 minutes"，全零 "less than a minute"
func (c Countdown) Long() string {
	if c.Overdue {
		return "OVERDUE"
	}
	parts := make([]string, 0, 3)
	if c.Days > 0 {
		parts = append(parts, plural(c.Days, "day"))
	}
	if c.Hours > 0 {
		parts = append(parts, plural(c.Hours, "hour"))
	}
	if c.Minutes > 0 {
		parts = append(parts, plural(c.Minutes, "minute"))
	}
	if len(parts) == 0 {
		return "less than a minute"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
