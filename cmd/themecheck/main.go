// Package main provides a validator for patchbay theme files.
// It loads each file through the normal theme pipeline and reports
// what the library would see, so theme authors can catch bad colors
// or version requirements before shipping.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/patchbay/pkg/patch"
	"github.com/go-drift/patchbay/pkg/source"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: themecheck <theme.yaml> [...]\n")
		os.Exit(2)
	}

	failed := false
	for _, path := range os.Args[1:] {
		theme, err := patch.LoadTheme(source.NewFileSource(path))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s: theme %q ok (%d port styles, %d line colors)\n",
			path, theme.Name, len(theme.Ports), len(theme.Lines))
	}
	if failed {
		os.Exit(1)
	}
}
