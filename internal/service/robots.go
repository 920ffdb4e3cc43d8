package service

import (
	"fmt"
	"os"
	"strings"
)

const defaultRobots = "User-agent: *\nAllow: /\n\nUser-agent: Mediapartners-Google\nAllow: /\n"

// RobotsTxt points the template's Sitemap line at baseURL, appending one when absent.
// The result carries exactly one Sitemap line: the first is rewritten in place, later ones dropped.
func RobotsTxt(template, baseURL string) string {
	if template == "" {
		template = defaultRobots
	}
	sitemap := "Sitemap: " + strings.TrimSuffix(baseURL, "/") + "/sitemap.xml"

	lines := strings.Split(strings.ReplaceAll(template, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines)+2)
	found := false
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "Sitemap:") {
			out = append(out, line)
			continue
		}
		if !found {
			out = append(out, sitemap)
			found = true
		}
	}
	result := strings.Join(out, "\n")
	if !found {
		result += "\n" + sitemap
	}

	return strings.TrimSpace(result)
}

// LoadRobotsTemplate reads src/robots.txt; a missing file yields the default rules.
func LoadRobotsTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultRobots, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read robots template: %w", err)
	}
	return string(data), nil
}
