package utils

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{60 * time.Second, "01:00"},
		{3*time.Minute + 7*time.Second, "03:07"},
		{61*time.Minute + 1*time.Second, "01:01:01"},
		{2*time.Hour + 3*time.Minute + 1*time.Second, "02:03:01"},
	}

	for _, test := range tests {
		result := FormatDuration(test.duration)
		if result != test.expected {
			t.Errorf("FormatDuration(%v) = %s; expected %s", test.duration, result, test.expected)
		}
	}
}

func TestFormatPlaybackTime(t *testing.T) {
	result := FormatPlaybackTime(83*time.Second, 225*time.Second)
	expected := "01:23 / 03:45"
	if result != expected {
		t.Errorf("FormatPlaybackTime = %s; expected %s", result, expected)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10x", 10, "exactly10x"},
		{"this is a very long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"abcde", 4, "a..."},
		// Кириллица не должна резаться посередине руны
		{"Сенджа ди Кота", 10, "Сенджа ..."},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%s, %d) = %s; expected %s", test.input, test.maxLen, result, test.expected)
		}
	}
}
