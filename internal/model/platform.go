package model

import "strings"

// Platform 社交平台标识
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

// AllPlatforms 按固定展示顺序返回全部受支持平台
func AllPlatforms() []Platform {
	return []Platform{PlatformTwitter, PlatformFacebook, PlatformInstagram, PlatformLinkedIn}
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformTwitter, PlatformFacebook, PlatformInstagram, PlatformLinkedIn:
		return true
	}
	return false
}

// Title 首字母大写的展示名
func (p Platform) Title() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// ParsePlatforms 解析逗号分隔的平台串：逐项 trim+小写后校验，
// 合法项去重保序，非法 token（含空串）原样收集返回。
func ParsePlatforms(csv string) (valid []Platform, invalid []string) {
	seen := make(map[Platform]struct{})
	for _, raw := range strings.Split(csv, ",") {
		token := strings.ToLower(strings.TrimSpace(raw))
		p := Platform(token)
		if !p.Valid() {
			invalid = append(invalid, token)
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		valid = append(valid, p)
	}
	return valid, invalid
}

// PlatformNames 平台列表转字符串切片（展示拼接用）
func PlatformNames(ps []Platform) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}
