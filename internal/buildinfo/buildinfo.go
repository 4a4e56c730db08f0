// Package buildinfo prints the version banner set at link time.
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

// Print writes the build version, date and commit to w, replacing empty values with N/A.
func Print(w io.Writer, version, date, commit string) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(version))
	fmt.Fprintf(w, "Build date: %s\n", orNA(date))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(commit))
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
