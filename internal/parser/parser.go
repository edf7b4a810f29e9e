package parser

import (
	"regexp"
	"strconv"
)

// Parser of cell override keys.
type Parser struct {
	keyRegexp *regexp.Regexp
}

// New ...
func New() (p *Parser, err error) {
	p = &Parser{}
	p.keyRegexp, err = regexp.Compile(keyRegexp)
	return
}

// CellKey returns the (row, col) offsets of an override key "r,c".
func (p *Parser) CellKey(key string) (row, col int, err error) {
	submatch := p.keyRegexp.FindStringSubmatch(key)
	if len(submatch) != 3 {
		err = errKeyNotDefined
		return
	}
	if row, err = strconv.Atoi(submatch[1]); err != nil {
		return
	}
	col, err = strconv.Atoi(submatch[2])
	return
}
