// Package rectangles holds the rectangle record and its area calculation.
package rectangles

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Rectangle is an immutable width x height pair in pixels
type Rectangle struct {
	Width  uint32
	Height uint32
}

// Default returns the 30x50 rectangle the demo prints
func Default() Rectangle {
	return Rectangle{Width: 30, Height: 50}
}

// Area returns width * height. The multiplication wraps on overflow.
func Area(r Rectangle) uint32 {
	return r.Width * r.Height
}

var dumper = spew.ConfigState{
	Indent:                  "    ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// Dump returns an indented debug representation with field names and types
func Dump(r Rectangle) string {
	return dumper.Sdump(r)
}

// FormatArea renders the area sentence
func FormatArea(area uint32) string {
	return fmt.Sprintf("The area of the rectangle is %d square pixels.", area)
}
