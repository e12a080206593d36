// Command rotmatrix prints a single-axis rotation matrix as a comma-separated
// list, ready to paste into a rawMatrix record.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"animscene/internal/mathutil"
)

func main() {
	degrees := flag.Float64("deg", 1, "Rotation angle in degrees")
	column := flag.Bool("column", false, "Print column-major (as rawMatrix values are read) instead of row-major")
	flag.Parse()

	if flag.NArg() < 1 || len(flag.Arg(0)) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: rotmatrix [-deg N] [-column] <x|y|z>")
		os.Exit(1)
	}

	m, err := mathutil.AxisRotation(flag.Arg(0)[0], *degrees)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *column {
		m = mathutil.Transpose16(m)
	}

	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	fmt.Println(strings.Join(parts, ", "))
}
