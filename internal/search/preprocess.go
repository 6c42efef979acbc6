package search

import (
	"bufio"
	"bytes"
	"strings"
)

// FlattenMarkdown prepares a Markdown document for the knowledge base: each
// table row becomes a standalone fact, separator rows are dropped and every
// other non-blank line becomes its own paragraph. Input without tables or
// text is returned unchanged.
func FlattenMarkdown(src []byte) ([]byte, error) {
	var b strings.Builder
	sc := bufio.NewScanner(bytes.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	wroteAny, sawTable := false, false
	writeFact := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "text") {
			return
		}
		b.WriteString(s)
		b.WriteString("\n\n")
		wroteAny = true
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|") {
			sawTable = true
			cells := make([]string, 0, 4)
			allSep := true
			for _, c := range strings.Split(strings.Trim(line, "|"), "|") {
				cell := strings.TrimSpace(c)
				if cell != "" {
					cells = append(cells, cell)
				}
				if strings.Trim(cell, ":- ") != "" {
					allSep = false
				}
			}
			if allSep || len(cells) == 0 {
				continue
			}
			writeFact(strings.Join(cells, " "))
			continue
		}
		writeFact(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawTable && !wroteAny {
		return src, nil
	}
	return []byte(strings.TrimRight(b.String(), "\n") + "\n"), nil
}
