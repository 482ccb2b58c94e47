package sprintlog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GrammarVersion identifies the line formats below. Bump it if the entry or
// header layout changes so older logs can be recognised.
const GrammarVersion = 1

const (
	// Preamble is written once, when the log file is created.
	Preamble = "# Writing Sprint Log\n\n"

	headerPrefix = "## "
	entryPrefix  = "- **Start:**"

	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

var (
	headerRegex = regexp.MustCompile(`^## (\d{4}-\d{2}-\d{2})\s*$`)

	// - **Start:** HH:MM:SS, **Duration:** D min, **Wordcount:** W words,
	// **Success:** true|false, **Doc:** [Title](Path)
	entryRegex = regexp.MustCompile(
		`^- \*\*Start:\*\* (\d{2}:\d{2}:\d{2}), ` +
			`\*\*Duration:\*\* (\d+) min, ` +
			`\*\*Wordcount:\*\* (-?\d+) words, ` +
			`\*\*Success:\*\* (true|false), ` +
			`\*\*Doc:\*\* \[(.*?)\]\((.*)\)\s*$`,
	)
)

// titleSeparator ends the title of the document link in an entry line.
const titleSeparator = "]("

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// SanitizeTitle makes a document title safe for an entry line. Line breaks
// become spaces and the link separator is split.
func SanitizeTitle(title string) string {
	title = lineBreaks.Replace(title)
	return strings.ReplaceAll(title, titleSeparator, "] (")
}

// SanitizePath makes a document path safe for an entry line.
func SanitizePath(path string) string {
	return lineBreaks.Replace(path)
}

// checkFields reports title or path values that would not parse back from a
// formatted entry line.
func checkFields(e Entry) error {
	if strings.ContainsAny(e.Title, "\r\n") || strings.Contains(e.Title, titleSeparator) {
		return errUnsafeEntry.Fmt("title", e.Title)
	}

	if strings.ContainsAny(e.Path, "\r\n") {
		return errUnsafeEntry.Fmt("path", e.Path)
	}

	return nil
}

// FormatHeader renders the section header for a date.
func FormatHeader(date string) string {
	return headerPrefix + date
}

// FormatEntry renders one entry line, including the trailing newline.
func FormatEntry(e Entry) string {
	return fmt.Sprintf(
		"- **Start:** %s, **Duration:** %d min, **Wordcount:** %d words, **Success:** %t, **Doc:** [%s](%s)\n",
		e.Start,
		e.DurationMinutes,
		e.WordsWritten,
		e.Success,
		e.Title,
		e.Path,
	)
}

// ParseHeader extracts the date from a section header line.
func ParseHeader(line string) (string, bool) {
	m := headerRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// ParseEntry parses an entry line. The returned entry has no Date since that
// comes from the enclosing section.
func ParseEntry(line string) (Entry, error) {
	m := entryRegex.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, errMalformedEntry.Fmt(line)
	}

	duration, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, errMalformedEntry.Fmt(line).Wrap(err)
	}

	words, err := strconv.Atoi(m[3])
	if err != nil {
		return Entry{}, errMalformedEntry.Fmt(line).Wrap(err)
	}

	return Entry{
		Start:           m[1],
		DurationMinutes: duration,
		WordsWritten:    words,
		Success:         m[4] == "true",
		Title:           m[5],
		Path:            m[6],
	}, nil
}

// Parse rebuilds a Log from the textual log content. Unrecognised lines are
// ignored, as are entries that appear outside a dated section.
func Parse(content string) *Log {
	l := NewLog()

	current := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")

		switch {
		case strings.HasPrefix(line, headerPrefix):
			// any other level-two heading closes the current section
			current, _ = ParseHeader(line)
			if current != "" {
				l.ensure(current)
			}
		case strings.HasPrefix(line, entryPrefix):
			if current == "" {
				continue
			}

			e, err := ParseEntry(line)
			if err != nil {
				continue
			}

			e.Date = current
			l.add(e)
		}
	}

	return l
}
