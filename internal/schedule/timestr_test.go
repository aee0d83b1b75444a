package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1pm", "1:00 PM"},
		{"130pm", "1:30 PM"},
		{"13:30", "1:30 PM"},
		{"13.30", "1:30 PM"},
		{"0:00", "12:00 AM"},
		{"1330", "1:30 PM"},
		{"130", "1:30 AM"},
		{"11am", "11:00 AM"},
		{"12pm", "12:00 PM"},
		{"12:00", "12:00 PM"},
		{"23:45", "11:45 PM"},
		{"9", "9:00 AM"},
		{"17", "5:00 PM"},
		{" 1 pm ", "1:00 PM"},
		{"1:30 PM", "1:30 PM"},

		// Unparseable input comes back trimmed but unchanged
		{"25:00", "25:00"},
		{"13pm", "13pm"},
		{"0pm", "0pm"},
		{"1:75", "1:75"},
		{"1475", "1475"},
		{"noonish", "noonish"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTime(tt.input))
		})
	}
}
