package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindProcedureReferences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Schema qualified",
			input:    "EXEC [dbo].[GetUser]",
			expected: []string{"GetUser"},
		},
		{
			name:     "SP_ prefix lower case with space",
			input:    "sp_ [Helper]",
			expected: []string{"Helper"},
		},
		{
			name:     "Lower case exec without space",
			input:    "exec[Reports]",
			expected: []string{"Reports"},
		},
		{
			name:     "Multiple matches in order",
			input:    "EXEC [a].[First]; EXEC [Second] and Exec [dbo].[First]",
			expected: []string{"First", "Second", "First"},
		},
		{
			name:     "Whitespace and newlines before bracket",
			input:    "EXEC\n\t [dbo].[Nightly Load]",
			expected: []string{"Nightly Load"},
		},
		{
			name:     "Embedded in a longer query",
			input:    "SELECT 1; EXEC [rpt].[usp_Sales] @From = '2024-01-01'",
			expected: []string{"usp_Sales"},
		},
		{
			name:     "Unbracketed name",
			input:    "EXEC dbo.GetUser",
			expected: nil,
		},
		{
			name:     "EXECUTE keyword",
			input:    "EXECUTE [dbo].[GetUser]",
			expected: nil,
		},
		{
			name:     "Keyword inside another word",
			input:    "REXEC [Nope] and XSP_ [Nope]",
			expected: nil,
		},
		{
			name:     "No-break space after EXEC",
			input:    "EXEC\u00a0[Name]",
			expected: []string{"Name"},
		},
		{
			name:     "Ideographic space before schema",
			input:    "exec\u3000[dbo].[Wide]",
			expected: []string{"Wide"},
		},
		{
			name:     "Vertical tab and line separator",
			input:    "SP_\v\u2028[Sep]",
			expected: []string{"Sep"},
		},
		{
			name:     "Zero-width space is not whitespace",
			input:    "EXEC\u200b[Hidden]",
			expected: nil,
		},
		{
			name:     "Plain text",
			input:    "no procedures here",
			expected: nil,
		},
		{
			name:     "Empty",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindProcedureReferences(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestProcedurePatternIsCaseInsensitive(t *testing.T) {
	assert.Contains(t, ProcedurePattern(), "(?i)")
}
