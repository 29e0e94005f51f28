package rewrite

// FileResult is the outcome of rewriting all lines of one file.
type FileResult struct {
	Lines []LineResult
	Count int
}

// Text returns the rewritten lines in order.
func (r *FileResult) Text() []string {
	lines := make([]string, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = line.Text
	}
	return lines
}

// Renames returns every rename in line order.
func (r *FileResult) Renames() []Rename {
	var renames []Rename
	for _, line := range r.Lines {
		renames = append(renames, line.Renames...)
	}
	return renames
}

// RewriteLines rewrites lines in order, tracking the constructor initializer
// list state across them. The first failing line aborts the scan with a
// *LineError.
func (e *Engine) RewriteLines(lines []string) (*FileResult, error) {
	result := &FileResult{Lines: make([]LineResult, 0, len(lines))}

	state := Outside
	prevLine := ""
	for i, line := range lines {
		state = TrackCtorInit(state, line, prevLine)

		lineResult, err := e.RewriteLine(line, state.Mode())
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}

		result.Lines = append(result.Lines, lineResult)
		result.Count += lineResult.Count

		state = LeaveCtorInit(state, line)
		prevLine = line
	}

	return result, nil
}
