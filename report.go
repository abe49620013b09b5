package nanohighlight

import (
	"fmt"
	"io"
	"os"
)

// features lists the editor options the master config turns on, as shown
// in the report.
var features = []string{
	"Line numbers",
	"Auto-indentation",
	"Mouse support",
	"Soft wrapping",
	"4-space tabs",
}

// VerifyAndReport prints the installation report to w.  Success is judged
// solely by p.Master existing.  Write errors on w are ignored.
func VerifyAndReport(w io.Writer, p Paths) {
	fmt.Fprintln(w, "Verifying nano syntax highlighting installation...")

	if _, err := os.Stat(p.Master); err != nil {
		fmt.Fprintln(w, "× Installation failed. Please check permissions and try again.")
		return
	}

	fmt.Fprintln(w, "✓ Enhanced syntax highlighting configuration created successfully")
	fmt.Fprintln(w, "✓ Custom highlighting rules implemented for:")
	for _, l := range Languages {
		fmt.Fprintf(w, "  - %s\n", l.describe())
	}
	fmt.Fprintln(w, "\nFeatures enabled:")
	for _, f := range features {
		fmt.Fprintf(w, "  - %s\n", f)
	}
	fmt.Fprintln(w, "\nTo use: Simply open files with nano, example:")
	fmt.Fprintln(w, "  nano example.py")
}
