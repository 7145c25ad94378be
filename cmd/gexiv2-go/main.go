// Command gexiv2-go inspects and edits image metadata through the gexiv2
// binding.
//
//	gexiv2-go dump photo.jpg
//	gexiv2-go get photo.jpg Exif.Photo.FNumber
//	gexiv2-go set photo.jpg Exif.Image.Make=Acme Xmp.dc.subject=a Xmp.dc.subject=b
//	gexiv2-go clear --family xmp photo.jpg
//
// Settings come from flags, GEXIV2_* environment variables or a YAML file
// given with --config, in that order of precedence.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
