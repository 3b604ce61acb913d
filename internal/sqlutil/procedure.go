// Package sqlutil provides SQL text helpers for xmlscan.
package sqlutil

import "regexp"

// space matches Unicode whitespace, including no-break and ideographic
// spaces. RE2's \s is ASCII-only.
const space = `[\t-\r\x{1c}-\x{20}\x{85}\x{2028}\x{2029}\p{Zs}]`

// procedureRefPattern matches EXEC or SP_ followed by an optional
// [schema]. qualifier and a bracketed name. Only the bracketed name is
// captured. It is a heuristic, not a SQL parser: unbracketed names,
// EXECUTE, and quoted identifiers are not recognised.
var procedureRefPattern = regexp.MustCompile(`(?i)\b(?:EXEC|SP_)` + space + `*(?:\[[^\]]+\]\.)?\[([^\]]+)\]`)

// FindProcedureReferences returns every stored procedure name referenced in
// text, in match order. Duplicates are kept; callers collapse them.
func FindProcedureReferences(text string) []string {
	matches := procedureRefPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// ProcedurePattern returns the expression used by FindProcedureReferences.
func ProcedurePattern() string {
	return procedureRefPattern.String()
}
