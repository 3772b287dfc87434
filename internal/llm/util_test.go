package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"type\": \"skill_gap\"}\n```",
			expected: `{"type": "skill_gap"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"type\": \"skill_gap\"}\n```",
			expected: `{"type": "skill_gap"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"type\": \"general\"}\n```",
			expected: `{"type": "general"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"type": "general"}`,
			expected: `{"type": "general"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"type\": \"general\"}\n  ",
			expected: `{"type": "general"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare object",
			input:    `{"type": "job_search"}`,
			expected: `{"type": "job_search"}`,
		},
		{
			name:     "preamble before object",
			input:    "Here is the classification:\n{\"type\": \"job_search\"}",
			expected: `{"type": "job_search"}`,
		},
		{
			name:     "trailing text after object",
			input:    "{\"type\": \"general\"}\n\nLet me know if you need anything else!",
			expected: `{"type": "general"}`,
		},
		{
			name:     "nested objects",
			input:    `result: {"outer": {"inner": "value"}} done`,
			expected: `{"outer": {"inner": "value"}}`,
		},
		{
			name:     "braces inside string literals",
			input:    `{"location": "near {somewhere}", "skills": []}`,
			expected: `{"location": "near {somewhere}", "skills": []}`,
		},
		{
			name:     "escaped quotes inside strings",
			input:    `{"targetJob": "\"data\" scientist"}`,
			expected: `{"targetJob": "\"data\" scientist"}`,
		},
		{
			name:    "no object at all",
			input:   "I could not classify that query.",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			input:   `{"type": "general"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExtractJSONObject(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ExtractJSONObject() expected error, got %q", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSONObject() unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("ExtractJSONObject() = %q, want %q", result, tt.expected)
			}
		})
	}
}
