package lattice

import (
	"io"
	"strings"
	"testing"
)

import "github.com/stretchr/testify/assert"

func stringInput(s string) Input {
	return func() (io.Reader, func(), error) {
		return strings.NewReader(s), func() {}, nil
	}
}

func scan(input string, sep string) ([][]string, error) {
	var lines [][]string
	err := ScanFields(stringInput(input), sep, func(line int, fields []string) error {
		lines = append(lines, fields)
		return nil
	})
	return lines, err
}

func TestScanFields(x *testing.T) {
	t := assert.New(x)
	lines, err := scan("a;b\r\nc\n  d;e  \n", ";")
	t.Nil(err)
	t.Equal([][]string{{"a", "b"}, {"c"}, {"d", "e"}}, lines)
}

func TestScanFieldsBlankLine(x *testing.T) {
	t := assert.New(x)
	_, err := scan("a b\n\nc\n", " ")
	pe, ok := err.(*ParseError)
	t.True(ok, "%T %v", err, err)
	t.Equal(2, pe.Line)
}

func TestScanFieldsEmptyField(x *testing.T) {
	t := assert.New(x)
	_, err := scan("a;b\na;;b\n", ";")
	pe, ok := err.(*ParseError)
	t.True(ok, "%T %v", err, err)
	t.Equal(2, pe.Line)

	_, err = scan("x  y\n", " ")
	pe, ok = err.(*ParseError)
	t.True(ok, "%T %v", err, err)
	t.Equal(1, pe.Line)
}

func TestCheckFields(x *testing.T) {
	t := assert.New(x)
	t.Nil(CheckFields(1, []string{"a", "b c"}, ";"))
	t.NotNil(CheckFields(1, []string{"a", "b c"}, " "))
	t.NotNil(CheckFields(1, []string{"a", ""}, " "))
	t.NotNil(CheckFields(4, nil, " "))
}
