// Package gexiv2 reads and writes Exif, XMP and IPTC image metadata through
// the native gexiv2 library.
//
// A Metadata value owns one native metadata object:
//
//	md, err := gexiv2.Open("photo.jpg")
//	if err != nil {
//	    return err
//	}
//	defer md.Close()
//
//	if maker, ok, err := md.TagString("Exif.Image.Make"); err == nil && ok {
//	    fmt.Println(maker)
//	}
//	if err := md.SetTagLong("Exif.Image.Orientation", 6); err != nil {
//	    return err
//	}
//	return md.Save("photo.jpg")
//
// The native library is initialized on first use; Initialize may be called
// explicitly to surface a setup failure early. Every native pointer stays
// inside an internal package, failures are reported as *Error values that
// match one of the package's sentinel errors with errors.Is, and getters
// distinguish an absent tag (ok == false) from an empty value.
//
// Builds without cgo, and Windows builds, compile against a stub: every call
// that needs the native library fails with ErrNotBuilt.
package gexiv2
