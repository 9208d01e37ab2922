package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadContentConfig_DataFile 加载仓库内置内容配置
func TestLoadContentConfig_DataFile(t *testing.T) {
	content, err := LoadContentConfig(filepath.Join("..", "..", "data", "content.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, content.Personal.Bio)
	assert.Len(t, content.Personal.Stats, 3)
	assert.NotEmpty(t, content.Experience)
	require.NotEmpty(t, content.Projects)
	assert.Equal(t, []string{"Go", "SQLite"}, content.Projects[0].Tags)
	require.NotEmpty(t, content.Skills)
	assert.Equal(t, "Go", content.Skills[0].Items[0].Name)
	assert.NotEmpty(t, content.Education)
	assert.NotEmpty(t, content.Certifications)
	assert.Len(t, content.Contact.Links, 2)
}

// TestParseContentConfig_Invalid YAML 语法错误
func TestParseContentConfig_Invalid(t *testing.T) {
	_, err := ParseContentConfig([]byte("personal: [ {"))
	assert.Error(t, err)
}

// TestParseContentConfig_Empty 空文件得到空内容而不是错误
func TestParseContentConfig_Empty(t *testing.T) {
	content, err := ParseContentConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, content.Experience)
}
