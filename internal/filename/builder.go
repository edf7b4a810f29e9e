package filename

import (
	"strings"
)

const extension = ".xlsx"

// Builder of workbook attachment filenames.
type Builder struct {
	uuidFunc func() string
}

// NewBuilder ...
func NewBuilder(
	uuidFunc func() string,
) *Builder {
	return &Builder{
		uuidFunc: uuidFunc,
	}
}

// Attachment returns the download filename for a project name, spaces
// replaced with underscores. An empty project name falls back to
// workbook-<uuid>.
func (b *Builder) Attachment(project string) string {
	if project == "" {
		return "workbook-" + b.uuidFunc() + extension
	}
	return strings.ReplaceAll(project, " ", "_") + extension
}
