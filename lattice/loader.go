package lattice

import (
	"bufio"
	"fmt"
	"strings"
)

const maxLine = 64 * 1024 * 1024

// ScanFields reads the input line by line, trims surrounding whitespace and
// splits each line on sep. A line without symbols or with an empty field is
// a ParseError; nothing is ever silently dropped.
func ScanFields(input Input, sep string, do func(line int, fields []string) error) (err error) {
	reader, closer, err := input()
	if err != nil {
		return err
	}
	defer closer()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for scanner.Scan() {
		line++
		fields, err := SplitFields(line, scanner.Text(), sep)
		if err != nil {
			return err
		}
		if err := do(line, fields); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &IOError{Op: "read", Err: err}
	}
	return nil
}

func SplitFields(line int, text, sep string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ParseError{Line: line, Reason: "no symbols on line"}
	}
	fields := strings.Split(text, sep)
	for i, f := range fields {
		if f == "" {
			return nil, &ParseError{Line: line, Reason: fmt.Sprintf("empty symbol in field %d", i+1)}
		}
	}
	return fields, nil
}

// CheckFields validates symbols supplied in memory rather than parsed from
// text: each must be non-empty and free of the delimiter.
func CheckFields(line int, fields []string, sep string) error {
	if len(fields) == 0 {
		return &ParseError{Line: line, Reason: "no symbols in transaction"}
	}
	for i, f := range fields {
		if f == "" {
			return &ParseError{Line: line, Reason: fmt.Sprintf("empty symbol in field %d", i+1)}
		} else if strings.Contains(f, sep) {
			return &ParseError{Line: line, Reason: fmt.Sprintf("symbol %q contains delimiter %q", f, sep)}
		}
	}
	return nil
}
