package audit

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"
)

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
}

// NewFileScanner yields the lines of r, one password per line. Trailing
// carriage returns are dropped.
func NewFileScanner(r io.Reader, filename string) Scanner {
	return &fileScanner{
		path:         filename,
		bufioScanner: bufio.NewScanner(r),
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("file-scanner")

	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err)
		return false
	}

	if success {
		s.lineNumber++
	}

	return success
}

func (s *fileScanner) Line(lager.Logger) *Line {
	text := s.bufioScanner.Text()
	if n := len(text); n > 0 && text[n-1] == '\r' {
		text = text[:n-1]
	}

	return &Line{
		Content:    text,
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.bufioScanner.Err()
}
