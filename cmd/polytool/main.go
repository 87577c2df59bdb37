// Command polytool runs the polyline, hull, and polygon operations of package
// spatial on geometries read from GeoJSON, WKT, or YAML documents.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "polytool:", err)
		os.Exit(1)
	}
}
