// Package parser splits a stream of plan documents for bufio.Scanner.
package parser

// PlanDivider is a bufio.SplitFunc yielding one ';'-terminated plan
// document per token. Semicolons inside JSON strings don't split.
func PlanDivider(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Return nothing if at end of file and no data passed
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	nextCharEscaped := false
	inQuoteScope := false
	for i, b := range data {
		if inQuoteScope && nextCharEscaped {
			nextCharEscaped = false
			continue
		}
		if inQuoteScope && b == '\\' {
			nextCharEscaped = true
			continue
		}

		if b == '"' {
			inQuoteScope = !inQuoteScope
		}

		if !inQuoteScope && b == ';' {
			return i + 1, data[0:i], nil
		}
	}

	// If at end of file with data return the data
	if atEOF {
		return len(data), data, nil
	}

	return
}
