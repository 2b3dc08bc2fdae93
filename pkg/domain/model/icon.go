package model

import "strings"

// IconKey identifies the operating system icon shown next to a file
type IconKey string

const (
	IconWindows IconKey = "windows"
	IconLinux   IconKey = "linux"
	IconUbuntu  IconKey = "ubuntu"
	IconAndroid IconKey = "android"
	IconApple   IconKey = "apple"
	IconDefault IconKey = "default"
)

// iconRules is evaluated in order; the first group with a matching keyword wins.
var iconRules = []struct {
	key      IconKey
	keywords []string
}{
	{IconWindows, []string{"windows", "win"}},
	{IconUbuntu, []string{"ubuntu"}},
	{IconLinux, []string{"linux"}},
	{IconAndroid, []string{"android"}},
	{IconApple, []string{"mac", "apple"}},
}

var iconClasses = map[IconKey]string{
	IconWindows: "fab fa-windows",
	IconLinux:   "fab fa-linux",
	IconUbuntu:  "fab fa-ubuntu",
	IconAndroid: "fab fa-android",
	IconApple:   "fab fa-apple",
	IconDefault: "fas fa-compact-disc",
}

// ClassifyIcon picks an icon from the file name, case-insensitively
func ClassifyIcon(name string) IconKey {
	lower := strings.ToLower(name)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.key
			}
		}
	}
	return IconDefault
}

// Class returns the Font Awesome class list for the icon
func (k IconKey) Class() string {
	if c, ok := iconClasses[k]; ok {
		return c
	}
	return iconClasses[IconDefault]
}
