package extract

import "strings"

// Topic returns the lesson topic: the first usable line within topicLookahead
// lines after a topic heading. The empty string means none was found.
func Topic(lines []string) string {
	for i, raw := range lines {
		if !strings.Contains(raw, topicHeader) {
			continue
		}
		end := min(i+1+topicLookahead, len(lines))
		for _, next := range lines[i+1 : end] {
			next = strings.TrimSpace(next)
			if next == "" || next == topicHeaderLine || isBoilerplate(next) {
				continue
			}
			return next
		}
	}
	return ""
}
