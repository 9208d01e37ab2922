package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ContentConfig 各区域面板的内容记录
//
// 配置文件位置: data/content.yaml
// 引擎本身不读取此配置，只由面板构建（pkg/content）使用。
type ContentConfig struct {
	Personal       PersonalContent   `yaml:"personal"`
	Experience     []ExperienceEntry `yaml:"experience"`
	Projects       []ProjectEntry    `yaml:"projects"`
	Skills         []SkillCategory   `yaml:"skills"`
	Education      []EducationEntry  `yaml:"education"`
	Certifications []string          `yaml:"certifications"`
	Contact        ContactContent    `yaml:"contact"`
}

// PersonalContent 个人简介
type PersonalContent struct {
	Bio   []string   `yaml:"bio"`
	Stats []StatItem `yaml:"stats"`
}

// StatItem 数值统计项（如 "5+ Years"）
type StatItem struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// ExperienceEntry 工作经历
type ExperienceEntry struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

// ProjectEntry 项目卡片
type ProjectEntry struct {
	Name        string   `yaml:"name"`
	Emoji       string   `yaml:"emoji"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Gradient    string   `yaml:"gradient"`
}

// SkillCategory 技能分类
type SkillCategory struct {
	Category string      `yaml:"category"`
	Items    []SkillItem `yaml:"items"`
}

// SkillItem 单项技能
type SkillItem struct {
	Name string `yaml:"name"`
}

// EducationEntry 教育经历
type EducationEntry struct {
	Icon        string `yaml:"icon"`
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

// ContactContent 联系方式
type ContactContent struct {
	Message string        `yaml:"message"`
	Links   []ContactLink `yaml:"links"`
}

// ContactLink 联系链接
type ContactLink struct {
	Icon string `yaml:"icon"`
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

// LoadContentConfig 从文件加载内容配置
func LoadContentConfig(path string) (*ContentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content config: %w", err)
	}
	return ParseContentConfig(data)
}

// ParseContentConfig 解析内容配置
func ParseContentConfig(data []byte) (*ContentConfig, error) {
	var content ContentConfig
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse content config: %w", err)
	}
	return &content, nil
}
