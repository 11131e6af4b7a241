// Command tiger is a minimal sample application: it opens a window,
// rasterizes a line of text, decodes an SVG and composites both every
// frame until the window is closed or Escape is pressed.
//
// The two asset files, bitcount.ttf and gs_tiger.svg, are resolved
// relative to the executable's install location (on Android, the asset
// root). A missing asset is a startup failure, not a degraded mode.
package main

import (
	"log"

	"github.com/ncruces/zenity"

	"github.com/gogpu/tiger/app"
	"github.com/gogpu/tiger/internal/gpuapp"
)

func main() {
	if err := gpuapp.Run(app.DefaultConfig()); err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("[Error]"))
		log.Fatalf("Error: %v", err)
	}
}
