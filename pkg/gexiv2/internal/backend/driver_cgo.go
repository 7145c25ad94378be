//go:build cgo && !windows

package backend

/*
#cgo pkg-config: gexiv2
#include <stdlib.h>
#include <string.h>
#include <glib.h>
#include <gexiv2/gexiv2.h>
*/
import "C"

import (
	"runtime"
	"sync"
	"unsafe"
)

// nativeEntry is what a Handle refers to. buf holds the C copy of an
// in-memory image: Exiv2's MemIo keeps pointing at the bytes it was opened
// on, so they must live exactly as long as the GExiv2Metadata.
type nativeEntry struct {
	md  *C.GExiv2Metadata
	buf unsafe.Pointer
}

type nativeDriver struct {
	handles *registry[*nativeEntry]

	// Exiv2's XMP namespace table is process-global and not documented as
	// safe for concurrent mutation.
	xmpMu sync.Mutex
}

var native = &nativeDriver{handles: newRegistry[*nativeEntry]()}

// Native returns the gexiv2-backed Driver. All callers share one instance.
func Native() Driver { return native }

func (d *nativeDriver) entry(h Handle) (*nativeEntry, error) {
	e, ok := d.handles.get(h)
	if !ok || e.md == nil {
		return nil, errInvalidHandle(h)
	}
	return e, nil
}

func (d *nativeDriver) md(h Handle) (*C.GExiv2Metadata, error) {
	e, err := d.entry(h)
	if err != nil {
		return nil, err
	}
	return e.md, nil
}

func (d *nativeDriver) Initialize() error {
	if C.gexiv2_initialize() == 0 {
		return errNoDetail("gexiv2_initialize")
	}
	return nil
}

func (d *nativeDriver) Version() string {
	return FormatVersion(int(C.gexiv2_get_version()))
}

func (d *nativeDriver) New() (Handle, error) {
	md := C.gexiv2_metadata_new()
	if md == nil {
		return 0, errNoDetail("gexiv2_metadata_new")
	}
	return d.handles.put(&nativeEntry{md: md}), nil
}

func (d *nativeDriver) Free(h Handle) bool {
	e, ok := d.handles.take(h)
	if !ok {
		return false
	}
	if e.md != nil {
		C.gexiv2_metadata_free(e.md)
	}
	// The image memory is released only after the object that reads it.
	if e.buf != nil {
		C.free(e.buf)
	}
	e.md = nil
	e.buf = nil
	return true
}

func (d *nativeDriver) OpenPath(h Handle, path string) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	cpath, err := cPath(path)
	if err != nil {
		return err
	}
	defer freeCString(cpath)

	var gerr *C.GError
	ok := C.gexiv2_metadata_open_path(md, cpath, &gerr)
	return check(OpOpen, "gexiv2_metadata_open_path", ok, gerr)
}

func (d *nativeDriver) OpenBuffer(h Handle, data []byte) error {
	e, err := d.entry(h)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return Failed(StatusUnsupportedFormat, "buffer is empty")
	}
	if int64(C.glong(len(data))) != int64(len(data)) {
		return Failed(StatusInvalidInput, "buffer of %d bytes exceeds glong", len(data))
	}

	buf := C.CBytes(data)
	if buf == nil {
		return Failed(StatusUnknown, "failed to allocate %d bytes", len(data))
	}
	var gerr *C.GError
	ok := C.gexiv2_metadata_open_buf(e.md, (*C.guint8)(buf), C.glong(len(data)), &gerr)
	if err := check(OpOpen, "gexiv2_metadata_open_buf", ok, gerr); err != nil {
		C.free(buf)
		return err
	}
	if e.buf != nil {
		C.free(e.buf)
	}
	e.buf = buf
	return nil
}

func (d *nativeDriver) OpenApp1Segment(h Handle, data []byte) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return Failed(StatusUnsupportedFormat, "APP1 segment is empty")
	}
	// Decoded into the metadata object during the call; not retained.
	var gerr *C.GError
	ok := C.gexiv2_metadata_from_app1_segment(md, (*C.guint8)(unsafe.Pointer(&data[0])), C.glong(len(data)), &gerr)
	runtime.KeepAlive(data)
	return check(OpOpen, "gexiv2_metadata_from_app1_segment", ok, gerr)
}

func (d *nativeDriver) SaveFile(h Handle, path string) error {
	return d.save(h, path, false)
}

func (d *nativeDriver) SaveExternal(h Handle, path string) error {
	return d.save(h, path, true)
}

func (d *nativeDriver) save(h Handle, path string, external bool) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	cpath, err := cPath(path)
	if err != nil {
		return err
	}
	defer freeCString(cpath)

	var gerr *C.GError
	if external {
		ok := C.gexiv2_metadata_save_external(md, cpath, &gerr)
		return check(OpSave, "gexiv2_metadata_save_external", ok, gerr)
	}
	ok := C.gexiv2_metadata_save_file(md, cpath, &gerr)
	return check(OpSave, "gexiv2_metadata_save_file", ok, gerr)
}

func (d *nativeDriver) Supports(h Handle, f Family) (bool, error) {
	md, err := d.md(h)
	if err != nil {
		return false, err
	}
	switch f {
	case FamilyExif:
		return C.gexiv2_metadata_get_supports_exif(md) != 0, nil
	case FamilyXmp:
		return C.gexiv2_metadata_get_supports_xmp(md) != 0, nil
	case FamilyIptc:
		return C.gexiv2_metadata_get_supports_iptc(md) != 0, nil
	}
	return false, Failed(StatusInvalidInput, "unknown family %s", f)
}

func (d *nativeDriver) MimeType(h Handle) (string, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return "", false, err
	}
	// Owned by the metadata object; copied, never freed here.
	s, ok := copyString(C.gexiv2_metadata_get_mime_type(md))
	return s, ok, nil
}

func (d *nativeDriver) PixelWidth(h Handle) (int, error) {
	md, err := d.md(h)
	if err != nil {
		return 0, err
	}
	return int(C.gexiv2_metadata_get_pixel_width(md)), nil
}

func (d *nativeDriver) PixelHeight(h Handle) (int, error) {
	md, err := d.md(h)
	if err != nil {
		return 0, err
	}
	return int(C.gexiv2_metadata_get_pixel_height(md)), nil
}

func (d *nativeDriver) HasTag(h Handle, tag string) (bool, error) {
	md, err := d.md(h)
	if err != nil {
		return false, err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return false, err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	ok := C.gexiv2_metadata_try_has_tag(md, ctag, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return false, err
	}
	return ok != 0, nil
}

func (d *nativeDriver) ClearTag(h Handle, tag string) (bool, error) {
	md, err := d.md(h)
	if err != nil {
		return false, err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return false, err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	ok := C.gexiv2_metadata_try_clear_tag(md, ctag, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return false, err
	}
	return ok != 0, nil
}

func (d *nativeDriver) Clear(h Handle) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	C.gexiv2_metadata_clear(md)
	return nil
}

func (d *nativeDriver) HasFamily(h Handle, f Family) (bool, error) {
	md, err := d.md(h)
	if err != nil {
		return false, err
	}
	switch f {
	case FamilyExif:
		return C.gexiv2_metadata_has_exif(md) != 0, nil
	case FamilyXmp:
		return C.gexiv2_metadata_has_xmp(md) != 0, nil
	case FamilyIptc:
		return C.gexiv2_metadata_has_iptc(md) != 0, nil
	}
	return false, Failed(StatusInvalidInput, "unknown family %s", f)
}

func (d *nativeDriver) ClearFamily(h Handle, f Family) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	switch f {
	case FamilyExif:
		C.gexiv2_metadata_clear_exif(md)
	case FamilyXmp:
		C.gexiv2_metadata_clear_xmp(md)
	case FamilyIptc:
		C.gexiv2_metadata_clear_iptc(md)
	default:
		return Failed(StatusInvalidInput, "unknown family %s", f)
	}
	return nil
}

func (d *nativeDriver) Tags(h Handle, f Family) ([]string, error) {
	md, err := d.md(h)
	if err != nil {
		return nil, err
	}
	switch f {
	case FamilyExif:
		return takeStrv(C.gexiv2_metadata_get_exif_tags(md)), nil
	case FamilyXmp:
		return takeStrv(C.gexiv2_metadata_get_xmp_tags(md)), nil
	case FamilyIptc:
		return takeStrv(C.gexiv2_metadata_get_iptc_tags(md)), nil
	}
	return nil, Failed(StatusInvalidInput, "unknown family %s", f)
}

func (d *nativeDriver) TagSupportsMultipleValues(h Handle, tag string) (bool, error) {
	md, err := d.md(h)
	if err != nil {
		return false, err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return false, err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	ok := C.gexiv2_metadata_try_tag_supports_multiple_values(md, ctag, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return false, err
	}
	return ok != 0, nil
}

func (d *nativeDriver) TagString(h Handle, tag string) (string, bool, error) {
	return d.getString(h, tag, false)
}

func (d *nativeDriver) TagInterpretedString(h Handle, tag string) (string, bool, error) {
	return d.getString(h, tag, true)
}

func (d *nativeDriver) getString(h Handle, tag string, interpreted bool) (string, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return "", false, err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return "", false, err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	var p *C.gchar
	if interpreted {
		p = C.gexiv2_metadata_try_get_tag_interpreted_string(md, ctag, &gerr)
	} else {
		p = C.gexiv2_metadata_try_get_tag_string(md, ctag, &gerr)
	}
	if err := checkVoid(OpOther, gerr); err != nil {
		takeString(p)
		return "", false, err
	}
	// NULL without an error means the tag is not present.
	s, ok := takeString(p)
	return s, ok, nil
}

func (d *nativeDriver) SetTagString(h Handle, tag, value string) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return err
	}
	defer freeCString(ctag)
	cval, err := cString("value", value)
	if err != nil {
		return err
	}
	defer freeCString(cval)

	var gerr *C.GError
	ok := C.gexiv2_metadata_try_set_tag_string(md, ctag, cval, &gerr)
	return check(OpOther, "gexiv2_metadata_try_set_tag_string", ok, gerr)
}

func (d *nativeDriver) TagMultiple(h Handle, tag string) ([]string, error) {
	md, err := d.md(h)
	if err != nil {
		return nil, err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return nil, err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	arr := C.gexiv2_metadata_try_get_tag_multiple(md, ctag, &gerr)
	values := takeStrv(arr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return nil, err
	}
	return values, nil
}

func (d *nativeDriver) SetTagMultiple(h Handle, tag string, values []string) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return err
	}
	defer freeCString(ctag)
	arr, free, err := cStrv("value", values)
	if err != nil {
		return err
	}
	defer free()

	var gerr *C.GError
	ok := C.gexiv2_metadata_try_set_tag_multiple(md, ctag, arr, &gerr)
	return check(OpOther, "gexiv2_metadata_try_set_tag_multiple", ok, gerr)
}

func (d *nativeDriver) TagLong(h Handle, tag string) (int64, bool, error) {
	// try_get_tag_long returns 0 both for a stored zero and for a missing
	// tag, so presence is checked first.
	present, err := d.HasTag(h, tag)
	if err != nil || !present {
		return 0, false, err
	}
	md, err := d.md(h)
	if err != nil {
		return 0, false, err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return 0, false, err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	v := C.gexiv2_metadata_try_get_tag_long(md, ctag, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return 0, false, err
	}
	return int64(v), true, nil
}

func (d *nativeDriver) SetTagLong(h Handle, tag string, value int64) error {
	if int64(C.glong(value)) != value {
		return Failed(StatusInvalidInput, "value %d does not fit a native long", value)
	}
	md, err := d.md(h)
	if err != nil {
		return err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	ok := C.gexiv2_metadata_try_set_tag_long(md, ctag, C.glong(value), &gerr)
	return check(OpOther, "gexiv2_metadata_try_set_tag_long", ok, gerr)
}

func (d *nativeDriver) TagRational(h Handle, tag string) (int32, int32, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return 0, 0, false, err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return 0, 0, false, err
	}
	defer freeCString(ctag)

	var num, den C.gint
	var gerr *C.GError
	ok := C.gexiv2_metadata_try_get_exif_tag_rational(md, ctag, &num, &den, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return 0, 0, false, err
	}
	if ok == 0 {
		return 0, 0, false, nil
	}
	return int32(num), int32(den), true, nil
}

func (d *nativeDriver) SetTagRational(h Handle, tag string, num, den int32) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	ok := C.gexiv2_metadata_try_set_exif_tag_rational(md, ctag, C.gint(num), C.gint(den), &gerr)
	return check(OpOther, "gexiv2_metadata_try_set_exif_tag_rational", ok, gerr)
}

func (d *nativeDriver) TagRaw(h Handle, tag string) ([]byte, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return nil, false, err
	}
	ctag, err := cString("tag", tag)
	if err != nil {
		return nil, false, err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	b := C.gexiv2_metadata_try_get_tag_raw(md, ctag, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		takeBytes(b)
		return nil, false, err
	}
	out, ok := takeBytes(b)
	return out, ok, nil
}

func (d *nativeDriver) Orientation(h Handle) (int, error) {
	md, err := d.md(h)
	if err != nil {
		return 0, err
	}
	var gerr *C.GError
	o := C.gexiv2_metadata_try_get_orientation(md, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return 0, err
	}
	return int(o), nil
}

func (d *nativeDriver) SetOrientation(h Handle, o int) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	var gerr *C.GError
	C.gexiv2_metadata_try_set_orientation(md, C.GExiv2Orientation(o), &gerr)
	return checkVoid(OpOther, gerr)
}

func (d *nativeDriver) ExposureTime(h Handle) (int32, int32, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return 0, 0, false, err
	}
	var num, den C.gint
	var gerr *C.GError
	ok := C.gexiv2_metadata_try_get_exposure_time(md, &num, &den, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return 0, 0, false, err
	}
	if ok == 0 {
		return 0, 0, false, nil
	}
	return int32(num), int32(den), true, nil
}

func (d *nativeDriver) FNumber(h Handle) (float64, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return 0, false, err
	}
	var gerr *C.GError
	v := C.gexiv2_metadata_try_get_fnumber(md, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return 0, false, err
	}
	// -1.0 is gexiv2's "not recorded" sentinel.
	if v == -1.0 {
		return 0, false, nil
	}
	return float64(v), true, nil
}

func (d *nativeDriver) FocalLength(h Handle) (float64, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return 0, false, err
	}
	var gerr *C.GError
	v := C.gexiv2_metadata_try_get_focal_length(md, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return 0, false, err
	}
	if v == -1.0 {
		return 0, false, nil
	}
	return float64(v), true, nil
}

func (d *nativeDriver) ISOSpeed(h Handle) (int, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return 0, false, err
	}
	var gerr *C.GError
	v := C.gexiv2_metadata_try_get_iso_speed(md, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return 0, false, err
	}
	if v == 0 {
		return 0, false, nil
	}
	return int(v), true, nil
}

func (d *nativeDriver) GPSInfo(h Handle) (float64, float64, float64, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return 0, 0, 0, false, err
	}
	var lon, lat, alt C.gdouble
	var gerr *C.GError
	ok := C.gexiv2_metadata_try_get_gps_info(md, &lon, &lat, &alt, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return 0, 0, 0, false, err
	}
	if ok == 0 {
		return 0, 0, 0, false, nil
	}
	return float64(lon), float64(lat), float64(alt), true, nil
}

func (d *nativeDriver) SetGPSInfo(h Handle, lon, lat, alt float64) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	var gerr *C.GError
	ok := C.gexiv2_metadata_try_set_gps_info(md, C.gdouble(lon), C.gdouble(lat), C.gdouble(alt), &gerr)
	return check(OpOther, "gexiv2_metadata_try_set_gps_info", ok, gerr)
}

func (d *nativeDriver) DeleteGPSInfo(h Handle) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	var gerr *C.GError
	C.gexiv2_metadata_try_delete_gps_info(md, &gerr)
	return checkVoid(OpOther, gerr)
}

func (d *nativeDriver) Comment(h Handle) (string, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return "", false, err
	}
	var gerr *C.GError
	p := C.gexiv2_metadata_try_get_comment(md, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		takeString(p)
		return "", false, err
	}
	s, ok := takeString(p)
	return s, ok, nil
}

func (d *nativeDriver) SetComment(h Handle, comment string) error {
	md, err := d.md(h)
	if err != nil {
		return err
	}
	cval, err := cString("comment", comment)
	if err != nil {
		return err
	}
	defer freeCString(cval)

	var gerr *C.GError
	C.gexiv2_metadata_try_set_comment(md, cval, &gerr)
	return checkVoid(OpOther, gerr)
}

func (d *nativeDriver) XMPPacket(h Handle) (string, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return "", false, err
	}
	var gerr *C.GError
	p := C.gexiv2_metadata_try_get_xmp_packet(md, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		takeString(p)
		return "", false, err
	}
	s, ok := takeString(p)
	return s, ok, nil
}

func (d *nativeDriver) GenerateXMPPacket(h Handle, flags, padding uint32) (string, bool, error) {
	md, err := d.md(h)
	if err != nil {
		return "", false, err
	}
	var gerr *C.GError
	p := C.gexiv2_metadata_try_generate_xmp_packet(md, C.GExiv2XmpFormatFlags(flags), C.guint32(padding), &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		takeString(p)
		return "", false, err
	}
	s, ok := takeString(p)
	return s, ok, nil
}

func (d *nativeDriver) IsTag(f Family, tag string) bool {
	ctag, err := cString("tag", tag)
	if err != nil {
		return false
	}
	defer freeCString(ctag)

	switch f {
	case FamilyExif:
		return C.gexiv2_metadata_is_exif_tag(ctag) != 0
	case FamilyXmp:
		return C.gexiv2_metadata_is_xmp_tag(ctag) != 0
	case FamilyIptc:
		return C.gexiv2_metadata_is_iptc_tag(ctag) != 0
	}
	return false
}

func (d *nativeDriver) TagLabel(tag string) (string, bool, error) {
	return d.tagInfo(tag, func(ctag *C.gchar, gerr **C.GError) *C.gchar {
		return C.gexiv2_metadata_try_get_tag_label(ctag, gerr)
	})
}

func (d *nativeDriver) TagDescription(tag string) (string, bool, error) {
	return d.tagInfo(tag, func(ctag *C.gchar, gerr **C.GError) *C.gchar {
		return C.gexiv2_metadata_try_get_tag_description(ctag, gerr)
	})
}

func (d *nativeDriver) TagType(tag string) (string, error) {
	s, ok, err := d.tagInfo(tag, func(ctag *C.gchar, gerr **C.GError) *C.gchar {
		return C.gexiv2_metadata_try_get_tag_type(ctag, gerr)
	})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errNoDetail("gexiv2_metadata_try_get_tag_type")
	}
	return s, nil
}

// tagInfo wraps the static lookups that return a string owned by Exiv2's
// tag tables.
func (d *nativeDriver) tagInfo(tag string, call func(*C.gchar, **C.GError) *C.gchar) (string, bool, error) {
	ctag, err := cString("tag", tag)
	if err != nil {
		return "", false, err
	}
	defer freeCString(ctag)

	var gerr *C.GError
	p := call(ctag, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return "", false, err
	}
	s, ok := copyString(p)
	return s, ok, nil
}

func (d *nativeDriver) RegisterXMPNamespace(name, prefix string) (bool, error) {
	cname, err := cString("namespace", name)
	if err != nil {
		return false, err
	}
	defer freeCString(cname)
	cprefix, err := cString("prefix", prefix)
	if err != nil {
		return false, err
	}
	defer freeCString(cprefix)

	d.xmpMu.Lock()
	defer d.xmpMu.Unlock()
	var gerr *C.GError
	ok := C.gexiv2_metadata_try_register_xmp_namespace(cname, cprefix, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return false, err
	}
	return ok != 0, nil
}

func (d *nativeDriver) UnregisterXMPNamespace(name string) (bool, error) {
	cname, err := cString("namespace", name)
	if err != nil {
		return false, err
	}
	defer freeCString(cname)

	d.xmpMu.Lock()
	defer d.xmpMu.Unlock()
	var gerr *C.GError
	ok := C.gexiv2_metadata_try_unregister_xmp_namespace(cname, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		return false, err
	}
	return ok != 0, nil
}

func (d *nativeDriver) UnregisterAllXMPNamespaces() error {
	d.xmpMu.Lock()
	defer d.xmpMu.Unlock()
	var gerr *C.GError
	C.gexiv2_metadata_try_unregister_all_xmp_namespaces(&gerr)
	return checkVoid(OpOther, gerr)
}

func (d *nativeDriver) XMPNamespaceForTag(tag string) (string, error) {
	ctag, err := cString("tag", tag)
	if err != nil {
		return "", err
	}
	defer freeCString(ctag)

	d.xmpMu.Lock()
	defer d.xmpMu.Unlock()
	var gerr *C.GError
	p := C.gexiv2_metadata_try_get_xmp_namespace_for_tag(ctag, &gerr)
	if err := checkVoid(OpOther, gerr); err != nil {
		takeString(p)
		return "", err
	}
	s, ok := takeString(p)
	if !ok {
		return "", Failed(StatusInvalidInput, "no XMP namespace for %q", tag)
	}
	return s, nil
}
