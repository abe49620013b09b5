package nanohighlight

import (
	"fmt"
	"strings"
)

// masterOptions precedes the include block in ~/.nanorc.
const masterOptions = `
# General settings
set const
set autoindent
set tabsize 4
set tabstospaces
set linenumbers
set mouse
set softwrap

# Include custom syntax files
`

// MasterConfig returns the ~/.nanorc text: the editor options followed by
// one include per Languages entry, in order.
func MasterConfig() []byte {
	var sb strings.Builder
	sb.WriteString(masterOptions)
	for _, l := range Languages {
		fmt.Fprintf(&sb, "include \"%s\"\n", l.IncludePath())
	}
	return []byte(sb.String())
}
