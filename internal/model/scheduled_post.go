package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ScheduleLayout 计划时间的固定格式（24 小时制，精确到分钟）
const ScheduleLayout = "2006-01-02 15:04"

// PostStatus 定时任务状态
type PostStatus string

const (
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusCancelled PostStatus = "cancelled"
	PostStatusPosted    PostStatus = "posted"
)

// ScheduleTime 分钟精度的计划时间，JSON 固定序列化为 "YYYY-MM-DD HH:MM"
type ScheduleTime struct {
	time.Time
}

func ParseScheduleTime(s string) (ScheduleTime, error) {
	t, err := time.Parse(ScheduleLayout, s)
	if err != nil {
		return ScheduleTime{}, err
	}
	return ScheduleTime{Time: t}, nil
}

func (t ScheduleTime) String() string { return t.Format(ScheduleLayout) }

func (t ScheduleTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(ScheduleLayout) + `"`), nil
}

func (t *ScheduleTime) UnmarshalJSON(data []byte) error {
	parsed, err := time.Parse(ScheduleLayout, strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Value/Scan 让 gorm 按普通时间列读写
func (t ScheduleTime) Value() (driver.Value, error) { return t.Time, nil }

func (t *ScheduleTime) Scan(v interface{}) error {
	switch x := v.(type) {
	case time.Time:
		t.Time = x
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	}
	return fmt.Errorf("unsupported schedule time value %T", v)
}

func (t *ScheduleTime) parse(s string) error {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05", ScheduleLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported schedule time format %q", s)
}

func (ScheduleTime) GormDataType() string { return "time" }

// ScheduledPost 定时发布记录
// 状态单向流转：scheduled → cancelled（取消）/ posted（外部发布器）
type ScheduledPost struct {
	ID           string       `json:"id" gorm:"primaryKey;type:varchar(8)"`
	Content      string       `json:"content" gorm:"type:text;not null"`
	Platforms    []Platform   `json:"platforms" gorm:"serializer:json;type:text"`
	ScheduleTime ScheduleTime `json:"schedule_time" gorm:"not null"`
	MediaURL     string       `json:"media_url" gorm:"type:varchar(512)"`
	Status       PostStatus   `json:"status" gorm:"type:varchar(16);index;not null"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null"`
	CancelledAt  *time.Time   `json:"cancelled_at,omitempty"`
	PostedAt     *time.Time   `json:"posted_at,omitempty"`
}

func (ScheduledPost) TableName() string { return "scheduled_posts" }

// Active 是否仍处于待发布状态
func (p *ScheduledPost) Active() bool { return p.Status == PostStatusScheduled }
