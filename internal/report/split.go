package report

// Split cuts a report into segments of at most limit characters for channels
// with a message size cap. Each cut is made after the last newline inside
// the limit; a segment with no newline is cut at the limit. Joining the
// segments gives back the report. A limit below 1 disables splitting.
func Split(text string, limit int) []string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	if limit < 1 || len(runes) <= limit {
		return []string{text}
	}

	var segments []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i >= 0; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		segments = append(segments, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		segments = append(segments, string(runes))
	}
	return segments
}
