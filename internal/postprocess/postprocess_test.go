package postprocess

import "testing"

func TestRemoveThinkingBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no thinking blocks",
			input:    "Hello, this is a normal translation.",
			expected: "Hello, this is a normal translation.",
		},
		{
			name:     "simple thinking block",
			input:    "Some text<thinking>Let me translate this</thinking>More text",
			expected: "Some textMore text",
		},
		{
			name:     "reasoning block",
			input:    "Start<reasoning>Analyzing the grammar</reasoning>End",
			expected: "StartEnd",
		},
		{
			name:     "reflection block",
			input:    "Begin<reflection>Checking context</reflection>Finish",
			expected: "BeginFinish",
		},
		{
			name:     "multiple thinking blocks",
			input:    "<thinking>First</thinking>middle<thinking>Second</thinking>",
			expected: "middle",
		},
		{
			name:     "truncated thinking block (no closing)",
			input:    "<thinking>Translation in progress",
			expected: "",
		},
		{
			name:     "truncated reasoning block",
			input:    "<reasoning>This model was cut off",
			expected: "",
		},
		{
			name:     "truncated thinking in middle",
			input:    "Before<thinking>Incomplete",
			expected: "Before",
		},
		{
			name:     "nested thinking inside content",
			input:    "Text<thinking>Ignored</thinking> after",
			expected: "Text after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := removeThinkingBlocks(tt.input)
			if result != tt.expected {
				t.Errorf("removeThinkingBlocks(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExtractDelimited(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no delimiters",
			input:    "Hello world.",
			expected: "",
		},
		{
			name:     "only begin",
			input:    "\\begin{trsltx}Hello",
			expected: "",
		},
		{
			name:     "only end",
			input:    "Hello\\end{trsltx}",
			expected: "",
		},
		{
			name:     "whitespace kept",
			input:    "Sure:\n\\begin{trsltx}\nHello \\ref{x}.\n\\end{trsltx}\nDone.",
			expected: "\nHello \\ref{x}.\n",
		},
		{
			name:     "first pair wins",
			input:    "\\begin{trsltx}a\\end{trsltx} \\begin{trsltx}b\\end{trsltx}",
			expected: "a",
		},
		{
			name:     "empty pair",
			input:    "\\begin{trsltx}\\end{trsltx}",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractDelimited(tt.input)
			if result != tt.expected {
				t.Errorf("ExtractDelimited(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCandidate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain answer",
			input:    "\\begin{trsltx}Hello.\\end{trsltx}",
			expected: "Hello.",
		},
		{
			name:     "delimiters inside thinking block ignored",
			input:    "<think>\\begin{trsltx}draft\\end{trsltx}</think>\\begin{trsltx}final\\end{trsltx}",
			expected: "final",
		},
		{
			name:     "truncated thinking",
			input:    "<thinking>\\begin{trsltx}draft",
			expected: "",
		},
		{
			name:     "decomposed accents composed",
			input:    "\\begin{trsltx}Cafe\u0301\\end{trsltx}",
			expected: "Caf\u00e9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Candidate(tt.input)
			if result != tt.expected {
				t.Errorf("Candidate(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
