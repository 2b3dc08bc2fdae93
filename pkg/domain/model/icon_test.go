package model_test

import (
	"testing"

	"github.com/m-mizutani/isoshelf/pkg/domain/model"
)

func TestClassifyIcon(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected model.IconKey
	}{
		{
			name:     "Windows by full keyword",
			filename: "Windows11_23H2.iso",
			expected: model.IconWindows,
		},
		{
			name:     "Windows by short keyword",
			filename: "winpe.img",
			expected: model.IconWindows,
		},
		{
			name:     "Ubuntu",
			filename: "ubuntu-22.04.iso",
			expected: model.IconUbuntu,
		},
		{
			name:     "Linux",
			filename: "alpine-linux-3.19.iso",
			expected: model.IconLinux,
		},
		{
			name:     "Android",
			filename: "Android-x86_64.iso",
			expected: model.IconAndroid,
		},
		{
			name:     "Apple by mac keyword",
			filename: "macOS-Sonoma.img",
			expected: model.IconApple,
		},
		{
			name:     "Apple by apple keyword",
			filename: "APPLE-recovery.img",
			expected: model.IconApple,
		},
		{
			name:     "Default",
			filename: "freebsd-14.0.iso",
			expected: model.IconDefault,
		},
		{
			name:     "Windows wins over Ubuntu",
			filename: "ubuntu-windows.iso",
			expected: model.IconWindows,
		},
		{
			name:     "Ubuntu wins over Linux",
			filename: "ubuntu-linux.iso",
			expected: model.IconUbuntu,
		},
		{
			name:     "Linux wins over Android",
			filename: "android-linux.img",
			expected: model.IconLinux,
		},
		{
			name:     "Substring win inside another word",
			filename: "darwin.iso",
			expected: model.IconWindows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ClassifyIcon(tt.filename)
			if got != tt.expected {
				t.Errorf("ClassifyIcon(%q) = %v, want %v", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestClassifyIcon_CaseInsensitive(t *testing.T) {
	names := []string{"UBUNTU.ISO", "ubuntu.iso", "UbUnTu.IsO"}
	for _, name := range names {
		if got := model.ClassifyIcon(name); got != model.IconUbuntu {
			t.Errorf("ClassifyIcon(%q) = %v, want %v", name, got, model.IconUbuntu)
		}
	}
}

func TestIconKey_Class(t *testing.T) {
	if got := model.IconWindows.Class(); got != "fab fa-windows" {
		t.Errorf("Class() = %q", got)
	}
	if got := model.IconKey("unknown").Class(); got != "fas fa-compact-disc" {
		t.Errorf("Class() for unknown key = %q", got)
	}
}
