package parser

import (
	"errors"
)

const (
	keyRegexp = `^\s*(-?[0-9]+)\s*,\s*(-?[0-9]+)\s*$`
)

var (
	errKeyNotDefined = errors.New("cell key not defined")
)
