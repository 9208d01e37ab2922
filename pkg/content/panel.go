// Package content 把区域内容记录整理成可直接绘制的文字面板。
package content

import (
	"fmt"
	"math"
	"strings"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
)

// HiddenZoneID 不显示面板的区域（开场区）
const HiddenZoneID = "intro"

// Panel 区域面板
type Panel struct {
	ZoneID string
	Title  string

	// Hidden 为 true 时不绘制面板
	Hidden bool

	// Lines 面板正文，空字符串表示空行
	Lines []string
}

// BuildPanel 根据活动区域构建面板。
// content 为 nil 时只包含标题。
func BuildPanel(zone components.Zone, content *config.ContentConfig) Panel {
	p := Panel{
		ZoneID: zone.ID,
		Title:  zone.Title,
		Hidden: zone.ID == HiddenZoneID,
	}
	if p.Hidden || content == nil {
		return p
	}

	switch zone.ID {
	case "about":
		p.Lines = aboutLines(content.Personal)
	case "experience":
		p.Lines = experienceLines(content.Experience)
	case "projects":
		p.Lines = projectLines(content.Projects)
	case "skills":
		p.Lines = skillLines(content.Skills)
	case "education":
		p.Lines = educationLines(content.Education, content.Certifications)
	case "contact":
		p.Lines = contactLines(content.Contact)
	}
	return p
}

func aboutLines(personal config.PersonalContent) []string {
	lines := append([]string(nil), personal.Bio...)
	if len(personal.Stats) == 0 {
		return lines
	}
	stats := make([]string, len(personal.Stats))
	for i, s := range personal.Stats {
		stats[i] = s.Value + " " + s.Label
	}
	return append(lines, "", strings.Join(stats, "  |  "))
}

func experienceLines(entries []config.ExperienceEntry) []string {
	var lines []string
	for i, e := range entries {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			fmt.Sprintf("%s @ %s", e.Title, e.Company),
			e.Period,
			e.Description,
		)
	}
	return lines
}

func projectLines(projects []config.ProjectEntry) []string {
	var lines []string
	for i, p := range projects {
		if i > 0 {
			lines = append(lines, "")
		}
		name := p.Name
		if p.Emoji != "" {
			name = p.Emoji + " " + name
		}
		lines = append(lines, name, p.Description)
		if len(p.Tags) > 0 {
			lines = append(lines, "["+strings.Join(p.Tags, "] [")+"]")
		}
	}
	return lines
}

func skillLines(categories []config.SkillCategory) []string {
	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		names := make([]string, len(c.Items))
		for i, item := range c.Items {
			names[i] = item.Name
		}
		lines = append(lines, fmt.Sprintf("%s: %s", c.Category, strings.Join(names, ", ")))
	}
	return lines
}

func educationLines(entries []config.EducationEntry, certifications []string) []string {
	var lines []string
	for i, e := range entries {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			strings.TrimSpace(e.Icon+" "+e.Degree),
			fmt.Sprintf("%s, %s", e.Institution, e.Period),
		)
		if e.Description != "" {
			lines = append(lines, e.Description)
		}
	}
	if len(certifications) > 0 {
		lines = append(lines, "", "Certifications:")
		for _, c := range certifications {
			lines = append(lines, "- "+c)
		}
	}
	return lines
}

func contactLines(contact config.ContactContent) []string {
	var lines []string
	if contact.Message != "" {
		lines = append(lines, contact.Message, "")
	}
	for _, l := range contact.Links {
		lines = append(lines, strings.TrimSpace(l.Icon+" "+l.Text))
	}
	return lines
}

// Dots 返回 n 个区域圆点的高亮状态，只有 active 对应的圆点为 true
func Dots(active, n int) []bool {
	if n <= 0 {
		return nil
	}
	dots := make([]bool, n)
	if active >= 0 && active < n {
		dots[active] = true
	}
	return dots
}

// ProgressPercent 返回 [0, 100] 范围内的进度百分比
func ProgressPercent(actual, totalLength float64) float64 {
	if totalLength <= 0 {
		return 0
	}
	return math.Max(0, math.Min(100, actual/totalLength*100))
}
