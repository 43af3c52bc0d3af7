package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInviteCode(t *testing.T) {
	code := GenerateInviteCode(8)
	assert.Len(t, code, 8)

	// 連續生成不重複
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c := GenerateInviteCode(8)
		assert.False(t, seen[c])
		seen[c] = true
	}
}
