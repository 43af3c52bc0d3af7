package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateInviteCode 生成球隊邀請碼，取 UUID 去掉連字號後的前 length 碼
func GenerateInviteCode(length int) string {
	code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	if length > 0 && length < len(code) {
		return code[:length]
	}
	return code
}
