package main

import (
	"fmt"

	"oss.terrastruct.com/polygons/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %s [--sides=0 --length=0 [--type=]] [--vertices] [--debug]

%[1]s prints the area of a hexagon and a square with side length 10.
Pass --sides and --length to also print the area of another regular polygon.
Pass --vertices to print the corners of each polygon as well.

Flags:
%s

Subcommands:
  %[1]s version - Print the version
`, ms.Name, ms.Opts.Help())
}
