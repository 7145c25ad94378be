// Package testdriver provides an in-memory backend.Driver for tests that must
// run without the native gexiv2 library.
//
// The double keeps tags as string lists keyed by their Exiv2 key, recognises
// images by magic bytes and persists tags by appending a YAML trailer to the
// image file. It counts initializer runs and frees so lifecycle properties
// can be asserted. It does not interpret metadata.
package testdriver

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

// Exiv2 codes the double reports, so failures classify like native ones.
const (
	gioNotFound          = 1
	gioIsDirectory       = 3
	gioPermissionDenied  = 14
	exvInvalidKey        = 7
	exvUnknownImageType  = 12
	exvMemoryUnknownType = 13
	exvNoNamespace       = 47
	exvInvalidTypeValue  = 57
)

var trailerMagic = []byte("\x00gexiv2-testdriver\x00")

type object struct {
	image []byte
	mime  string
	tags  map[string][]string
}

// Driver is a concurrency-safe fake of the native library.
type Driver struct {
	mu         sync.Mutex
	next       backend.Handle
	objs       map[backend.Handle]*object
	namespaces map[string]string // prefix -> URI, user registered only
	faults     map[string]error

	initErr error

	initCalls   atomic.Int64
	frees       atomic.Int64
	doubleFrees atomic.Int64
}

var _ backend.Driver = (*Driver)(nil)

// New returns an empty Driver.
func New() *Driver {
	return &Driver{
		next:       1,
		objs:       make(map[backend.Handle]*object),
		namespaces: make(map[string]string),
		faults:     make(map[string]error),
	}
}

// FailInitialize makes every Initialize call return err.
func (d *Driver) FailInitialize(err error) {
	d.mu.Lock()
	d.initErr = err
	d.mu.Unlock()
}

// Fail makes the named Driver method return err until Fail is called again
// with a nil error.
func (d *Driver) Fail(method string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		delete(d.faults, method)
		return
	}
	d.faults[method] = err
}

// InitCalls reports how many times Initialize ran.
func (d *Driver) InitCalls() int64 { return d.initCalls.Load() }

// Frees reports how many live handles were released.
func (d *Driver) Frees() int64 { return d.frees.Load() }

// DoubleFrees reports Free calls on handles that were not live.
func (d *Driver) DoubleFrees() int64 { return d.doubleFrees.Load() }

// Live reports the number of handles not yet freed.
func (d *Driver) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.objs)
}

func (d *Driver) Initialize() error {
	d.initCalls.Add(1)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initErr
}

func (d *Driver) Version() string { return "0.14.3" }

func (d *Driver) New() (backend.Handle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.faults["New"]; err != nil {
		return 0, err
	}
	h := d.next
	d.next++
	d.objs[h] = &object{tags: make(map[string][]string)}
	return h, nil
}

func (d *Driver) Free(h backend.Handle) bool {
	d.mu.Lock()
	_, ok := d.objs[h]
	delete(d.objs, h)
	d.mu.Unlock()
	if !ok {
		d.doubleFrees.Add(1)
		return false
	}
	d.frees.Add(1)
	return true
}

// lookup returns the object for h with d.mu held. The caller unlocks.
func (d *Driver) lookup(method string, h backend.Handle) (*object, error) {
	d.mu.Lock()
	if err := d.faults[method]; err != nil {
		d.mu.Unlock()
		return nil, err
	}
	o, ok := d.objs[h]
	if !ok {
		d.mu.Unlock()
		return nil, backend.Failed(backend.StatusUnknown, "invalid native handle %d", h)
	}
	return o, nil
}

func nativeErr(op backend.OpClass, domain string, code int, msg string) *backend.Error {
	return &backend.Error{
		Status:  backend.Classify(op, domain, code),
		Domain:  domain,
		Code:    code,
		Message: msg,
	}
}

func fileErr(op backend.OpClass, err error) *backend.Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nativeErr(op, backend.DomainGIO, gioNotFound, err.Error())
	case errors.Is(err, fs.ErrPermission):
		return nativeErr(op, backend.DomainGIO, gioPermissionDenied, err.Error())
	}
	return nativeErr(op, backend.DomainGIO, gioIsDirectory, err.Error())
}

func sniff(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}):
		return "image/png"
	case bytes.HasPrefix(data, []byte{'I', 'I', '*', 0}), bytes.HasPrefix(data, []byte{'M', 'M', 0, '*'}):
		return "image/tiff"
	}
	return ""
}

// split separates image bytes from a trailer written by a previous save.
func split(data []byte) ([]byte, map[string][]string, error) {
	i := bytes.LastIndex(data, trailerMagic)
	if i < 0 {
		return data, map[string][]string{}, nil
	}
	tags := map[string][]string{}
	if err := yaml.Unmarshal(data[i+len(trailerMagic):], &tags); err != nil {
		return nil, nil, err
	}
	return data[:i], tags, nil
}

func (d *Driver) load(o *object, op backend.OpClass, data []byte, code int) error {
	image, tags, err := split(data)
	if err != nil {
		return nativeErr(op, backend.DomainGExiv2, 60, "corrupted metadata trailer")
	}
	mime := sniff(image)
	if mime == "" {
		return nativeErr(op, backend.DomainGExiv2, code, "unknown image type")
	}
	o.image = bytes.Clone(image)
	o.mime = mime
	o.tags = tags
	return nil
}

func (d *Driver) OpenPath(h backend.Handle, path string) error {
	if err := backend.CheckPath(path); err != nil {
		return err
	}
	o, err := d.lookup("OpenPath", h)
	if err != nil {
		return err
	}
	defer d.mu.Unlock()
	data, err := os.ReadFile(path)
	if err != nil {
		return fileErr(backend.OpOpen, err)
	}
	return d.load(o, backend.OpOpen, data, exvUnknownImageType)
}

func (d *Driver) OpenBuffer(h backend.Handle, data []byte) error {
	o, err := d.lookup("OpenBuffer", h)
	if err != nil {
		return err
	}
	defer d.mu.Unlock()
	if len(data) == 0 {
		return backend.Failed(backend.StatusUnsupportedFormat, "buffer is empty")
	}
	return d.load(o, backend.OpOpen, data, exvMemoryUnknownType)
}

// OpenApp1Segment accepts an "Exif\0\0" header followed by a TIFF structure.
func (d *Driver) OpenApp1Segment(h backend.Handle, data []byte) error {
	o, err := d.lookup("OpenApp1Segment", h)
	if err != nil {
		return err
	}
	defer d.mu.Unlock()
	body, ok := bytes.CutPrefix(data, []byte("Exif\x00\x00"))
	if !ok || sniff(body) != "image/tiff" {
		return nativeErr(backend.OpOpen, backend.DomainGExiv2, exvMemoryUnknownType, "not an APP1 Exif segment")
	}
	_, tags, err := split(body)
	if err != nil {
		return nativeErr(backend.OpOpen, backend.DomainGExiv2, 60, "corrupted metadata trailer")
	}
	o.tags = tags
	return nil
}

func (d *Driver) SaveFile(h backend.Handle, path string) error {
	if err := backend.CheckPath(path); err != nil {
		return err
	}
	o, err := d.lookup("SaveFile", h)
	if err != nil {
		return err
	}
	defer d.mu.Unlock()
	existing, err := os.ReadFile(path)
	if err != nil {
		return fileErr(backend.OpSave, err)
	}
	image, _, err := split(existing)
	if err != nil || sniff(image) == "" {
		return nativeErr(backend.OpSave, backend.DomainGExiv2, exvUnknownImageType, "target is not a supported image")
	}
	trailer, err := yaml.Marshal(o.tags)
	if err != nil {
		return backend.Failed(backend.StatusWriteFailed, "encode trailer: %v", err)
	}
	out := make([]byte, 0, len(image)+len(trailerMagic)+len(trailer))
	out = append(out, image...)
	out = append(out, trailerMagic...)
	out = append(out, trailer...)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fileErr(backend.OpSave, err)
	}
	return nil
}

func (d *Driver) SaveExternal(h backend.Handle, path string) error {
	if err := backend.CheckPath(path); err != nil {
		return err
	}
	o, err := d.lookup("SaveExternal", h)
	if err != nil {
		return err
	}
	defer d.mu.Unlock()
	if err := os.WriteFile(path, []byte(xmpPacket(o.tags)), 0o644); err != nil {
		return fileErr(backend.OpSave, err)
	}
	return nil
}

func (d *Driver) Supports(h backend.Handle, f backend.Family) (bool, error) {
	o, err := d.lookup("Supports", h)
	if err != nil {
		return false, err
	}
	defer d.mu.Unlock()
	if f < backend.FamilyExif || f > backend.FamilyIptc {
		return false, backend.Failed(backend.StatusInvalidInput, "unknown family %s", f)
	}
	return o.mime != "", nil
}

func (d *Driver) MimeType(h backend.Handle) (string, bool, error) {
	o, err := d.lookup("MimeType", h)
	if err != nil {
		return "", false, err
	}
	defer d.mu.Unlock()
	return o.mime, o.mime != "", nil
}

func (d *Driver) PixelWidth(h backend.Handle) (int, error) {
	w, _, err := d.dimensions("PixelWidth", h)
	return w, err
}

func (d *Driver) PixelHeight(h backend.Handle) (int, error) {
	_, ht, err := d.dimensions("PixelHeight", h)
	return ht, err
}

// dimensions reads the PNG IHDR chunk; other formats report zero.
func (d *Driver) dimensions(method string, h backend.Handle) (int, int, error) {
	o, err := d.lookup(method, h)
	if err != nil {
		return 0, 0, err
	}
	defer d.mu.Unlock()
	if o.mime != "image/png" || len(o.image) < 24 {
		return 0, 0, nil
	}
	return int(binary.BigEndian.Uint32(o.image[16:20])), int(binary.BigEndian.Uint32(o.image[20:24])), nil
}

// checkKey validates a tag key the way Exiv2's key parsers do.
func (d *Driver) checkKey(tag string) error {
	if err := backend.CheckText("tag", tag); err != nil {
		return err
	}
	if familyOf(tag) == 0 {
		return nativeErr(backend.OpOther, backend.DomainGExiv2, exvInvalidKey, "invalid key '"+tag+"'")
	}
	return nil
}

func familyOf(tag string) backend.Family {
	parts := strings.SplitN(tag, ".", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return 0
	}
	switch parts[0] {
	case "Exif":
		return backend.FamilyExif
	case "Xmp":
		return backend.FamilyXmp
	case "Iptc":
		return backend.FamilyIptc
	}
	return 0
}

func (d *Driver) tagged(method string, h backend.Handle, tag string) (*object, error) {
	if err := d.checkKey(tag); err != nil {
		return nil, err
	}
	return d.lookup(method, h)
}

func (d *Driver) HasTag(h backend.Handle, tag string) (bool, error) {
	o, err := d.tagged("HasTag", h, tag)
	if err != nil {
		return false, err
	}
	defer d.mu.Unlock()
	_, ok := o.tags[tag]
	return ok, nil
}

func (d *Driver) ClearTag(h backend.Handle, tag string) (bool, error) {
	o, err := d.tagged("ClearTag", h, tag)
	if err != nil {
		return false, err
	}
	defer d.mu.Unlock()
	_, ok := o.tags[tag]
	delete(o.tags, tag)
	return ok, nil
}

func (d *Driver) Clear(h backend.Handle) error {
	o, err := d.lookup("Clear", h)
	if err != nil {
		return err
	}
	defer d.mu.Unlock()
	o.tags = make(map[string][]string)
	return nil
}

func (d *Driver) HasFamily(h backend.Handle, f backend.Family) (bool, error) {
	tags, err := d.Tags(h, f)
	return len(tags) > 0, err
}

func (d *Driver) ClearFamily(h backend.Handle, f backend.Family) error {
	o, err := d.lookup("ClearFamily", h)
	if err != nil {
		return err
	}
	defer d.mu.Unlock()
	for k := range o.tags {
		if familyOf(k) == f {
			delete(o.tags, k)
		}
	}
	return nil
}

func (d *Driver) Tags(h backend.Handle, f backend.Family) ([]string, error) {
	o, err := d.lookup("Tags", h)
	if err != nil {
		return nil, err
	}
	defer d.mu.Unlock()
	out := []string{}
	for k := range o.tags {
		if familyOf(k) == f {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (d *Driver) TagSupportsMultipleValues(h backend.Handle, tag string) (bool, error) {
	if _, err := d.tagged("TagSupportsMultipleValues", h, tag); err != nil {
		return false, err
	}
	defer d.mu.Unlock()
	return repeatable(tag), nil
}

func repeatable(tag string) bool {
	switch typeOf(tag) {
	case "XmpBag", "XmpSeq", "XmpAlt", "LangAlt":
		return true
	}
	return tag == "Iptc.Application2.Keywords" || tag == "Iptc.Application2.Subject"
}

func (d *Driver) TagString(h backend.Handle, tag string) (string, bool, error) {
	o, err := d.tagged("TagString", h, tag)
	if err != nil {
		return "", false, err
	}
	defer d.mu.Unlock()
	v, ok := o.tags[tag]
	if !ok {
		return "", false, nil
	}
	return strings.Join(v, ", "), true, nil
}

func (d *Driver) TagInterpretedString(h backend.Handle, tag string) (string, bool, error) {
	s, ok, err := d.TagString(h, tag)
	if err != nil || !ok {
		return s, ok, err
	}
	if tag == "Exif.Image.Orientation" {
		if name, found := orientationNames[s]; found {
			return name, true, nil
		}
	}
	return s, true, nil
}

var orientationNames = map[string]string{
	"1": "top, left", "2": "top, right", "3": "bottom, right", "4": "bottom, left",
	"5": "left, top", "6": "right, top", "7": "right, bottom", "8": "left, bottom",
}

func (d *Driver) set(method string, h backend.Handle, tag string, values ...string) error {
	if err := backend.CheckTexts("value", values); err != nil {
		return err
	}
	o, err := d.tagged(method, h, tag)
	if err != nil {
		return err
	}
	defer d.mu.Unlock()
	o.tags[tag] = values
	return nil
}

func (d *Driver) SetTagString(h backend.Handle, tag, value string) error {
	return d.set("SetTagString", h, tag, value)
}

func (d *Driver) TagMultiple(h backend.Handle, tag string) ([]string, error) {
	o, err := d.tagged("TagMultiple", h, tag)
	if err != nil {
		return nil, err
	}
	defer d.mu.Unlock()
	return append([]string{}, o.tags[tag]...), nil
}

func (d *Driver) SetTagMultiple(h backend.Handle, tag string, values []string) error {
	return d.set("SetTagMultiple", h, tag, append([]string{}, values...)...)
}

func (d *Driver) TagLong(h backend.Handle, tag string) (int64, bool, error) {
	s, ok, err := d.TagString(h, tag)
	if err != nil || !ok {
		return 0, false, err
	}
	v, perr := strconv.ParseInt(s, 10, 64)
	if perr != nil {
		return 0, false, nativeErr(backend.OpOther, backend.DomainGExiv2, exvInvalidTypeValue, "value of "+tag+" is not an integer")
	}
	return v, true, nil
}

func (d *Driver) SetTagLong(h backend.Handle, tag string, value int64) error {
	return d.set("SetTagLong", h, tag, strconv.FormatInt(value, 10))
}

func (d *Driver) TagRational(h backend.Handle, tag string) (int32, int32, bool, error) {
	s, ok, err := d.TagString(h, tag)
	if err != nil || !ok {
		return 0, 0, false, err
	}
	num, den, perr := parseRational(s)
	if perr != nil {
		return 0, 0, false, nativeErr(backend.OpOther, backend.DomainGExiv2, exvInvalidTypeValue, "value of "+tag+" is not a rational")
	}
	return num, den, true, nil
}

func parseRational(s string) (int32, int32, error) {
	n, dn, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, strconv.ErrSyntax
	}
	num, err := strconv.ParseInt(n, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	den, err := strconv.ParseInt(dn, 10, 32)
	if err != nil {
		return 0, 0, err
	}
	return int32(num), int32(den), nil
}

func (d *Driver) SetTagRational(h backend.Handle, tag string, num, den int32) error {
	return d.set("SetTagRational", h, tag, strconv.FormatInt(int64(num), 10)+"/"+strconv.FormatInt(int64(den), 10))
}

// TagRaw decodes the decimal byte list Exiv2 uses for UNDEFINED and BYTE
// values; other types return the stored text.
func (d *Driver) TagRaw(h backend.Handle, tag string) ([]byte, bool, error) {
	s, ok, err := d.TagString(h, tag)
	if err != nil || !ok {
		return nil, false, err
	}
	if t := typeOf(tag); t == "Undefined" || t == "Byte" {
		if b, ok := decimalBytes(s); ok {
			return b, true, nil
		}
	}
	return []byte(s), true, nil
}

func decimalBytes(s string) ([]byte, bool) {
	fields := strings.Fields(s)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, false
		}
		out = append(out, byte(n))
	}
	return out, true
}

func (d *Driver) Orientation(h backend.Handle) (int, error) {
	v, ok, err := d.TagLong(h, "Exif.Image.Orientation")
	if err != nil || !ok || v < 0 || v > 8 {
		return 0, err
	}
	return int(v), nil
}

func (d *Driver) SetOrientation(h backend.Handle, o int) error {
	if o < 0 || o > 8 {
		return backend.Failed(backend.StatusInvalidInput, "orientation %d out of range", o)
	}
	return d.SetTagLong(h, "Exif.Image.Orientation", int64(o))
}

func (d *Driver) ExposureTime(h backend.Handle) (int32, int32, bool, error) {
	return d.TagRational(h, "Exif.Photo.ExposureTime")
}

func (d *Driver) ratioFloat(h backend.Handle, tag string) (float64, bool, error) {
	num, den, ok, err := d.TagRational(h, tag)
	if err != nil || !ok || den == 0 {
		return 0, false, err
	}
	return float64(num) / float64(den), true, nil
}

func (d *Driver) FNumber(h backend.Handle) (float64, bool, error) {
	return d.ratioFloat(h, "Exif.Photo.FNumber")
}

func (d *Driver) FocalLength(h backend.Handle) (float64, bool, error) {
	return d.ratioFloat(h, "Exif.Photo.FocalLength")
}

func (d *Driver) ISOSpeed(h backend.Handle) (int, bool, error) {
	v, ok, err := d.TagLong(h, "Exif.Photo.ISOSpeedRatings")
	if err != nil || !ok || v == 0 {
		return 0, false, err
	}
	return int(v), true, nil
}

const (
	gpsLongitude = "Exif.GPSInfo.GPSLongitude"
	gpsLatitude  = "Exif.GPSInfo.GPSLatitude"
	gpsAltitude  = "Exif.GPSInfo.GPSAltitude"
)

func (d *Driver) GPSInfo(h backend.Handle) (float64, float64, float64, bool, error) {
	var coords [3]float64
	for i, tag := range []string{gpsLongitude, gpsLatitude, gpsAltitude} {
		s, ok, err := d.TagString(h, tag)
		if err != nil || !ok {
			return 0, 0, 0, false, err
		}
		v, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return 0, 0, 0, false, nativeErr(backend.OpOther, backend.DomainGExiv2, exvInvalidTypeValue, "bad GPS value in "+tag)
		}
		coords[i] = v
	}
	return coords[0], coords[1], coords[2], true, nil
}

func (d *Driver) SetGPSInfo(h backend.Handle, lon, lat, alt float64) error {
	if err := d.DeleteGPSInfo(h); err != nil {
		return err
	}
	for tag, v := range map[string]float64{gpsLongitude: lon, gpsLatitude: lat, gpsAltitude: alt} {
		if err := d.set("SetGPSInfo", h, tag, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) DeleteGPSInfo(h backend.Handle) error {
	o, err := d.lookup("DeleteGPSInfo", h)
	if err != nil {
		return err
	}
	defer d.mu.Unlock()
	for k := range o.tags {
		if strings.HasPrefix(k, "Exif.GPSInfo.") {
			delete(o.tags, k)
		}
	}
	return nil
}

func (d *Driver) Comment(h backend.Handle) (string, bool, error) {
	return d.TagString(h, "Exif.Photo.UserComment")
}

func (d *Driver) SetComment(h backend.Handle, comment string) error {
	return d.SetTagString(h, "Exif.Photo.UserComment", comment)
}

func (d *Driver) XMPPacket(h backend.Handle) (string, bool, error) {
	o, err := d.lookup("XMPPacket", h)
	if err != nil {
		return "", false, err
	}
	defer d.mu.Unlock()
	for k := range o.tags {
		if familyOf(k) == backend.FamilyXmp {
			return xmpPacket(o.tags), true, nil
		}
	}
	return "", false, nil
}

func (d *Driver) GenerateXMPPacket(h backend.Handle, flags, padding uint32) (string, bool, error) {
	o, err := d.lookup("GenerateXMPPacket", h)
	if err != nil {
		return "", false, err
	}
	defer d.mu.Unlock()
	return xmpPacket(o.tags) + strings.Repeat(" ", int(padding)), true, nil
}

// xmpPacket renders Xmp tags one per line. It is not real RDF.
func xmpPacket(tags map[string][]string) string {
	var keys []string
	for k := range tags {
		if familyOf(k) == backend.FamilyXmp {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("<x:xmpmeta xmlns:x=\"adobe:ns:meta/\">\n")
	for _, k := range keys {
		b.WriteString(k + "=" + strings.Join(tags[k], "|") + "\n")
	}
	b.WriteString("</x:xmpmeta>")
	return b.String()
}

func (d *Driver) IsTag(f backend.Family, tag string) bool {
	if backend.CheckText("tag", tag) != nil || familyOf(tag) != f {
		return false
	}
	if f != backend.FamilyXmp {
		return true
	}
	_, ok := d.namespaceFor(strings.SplitN(tag, ".", 3)[1])
	return ok
}

type tagInfo struct {
	typ, label, desc string
}

var known = map[string]tagInfo{
	"Exif.Image.Make":            {"Ascii", "Manufacturer", "The manufacturer of the recording equipment."},
	"Exif.Image.Model":           {"Ascii", "Model", "The model name or model number of the equipment."},
	"Exif.Image.Orientation":     {"Short", "Orientation", "The image orientation viewed in terms of rows and columns."},
	"Exif.Image.ImageWidth":      {"Long", "Image Width", "The number of columns of image data."},
	"Exif.Image.TimeZoneOffset":  {"SShort", "Time Zone Offset", "Time zone of the time of image-taking."},
	"Exif.Image.DateTime":        {"Ascii", "Date and Time", "The date and time of image creation."},
	"Exif.Image.ExifTag":         {"Long", "Exif IFD Pointer", "A pointer to the Exif IFD."},
	"Exif.Photo.ExposureTime":    {"Rational", "Exposure Time", "Exposure time, given in seconds."},
	"Exif.Photo.FNumber":         {"Rational", "FNumber", "The F number."},
	"Exif.Photo.FocalLength":     {"Rational", "Focal Length", "The actual focal length of the lens, in mm."},
	"Exif.Photo.ISOSpeedRatings": {"Short", "ISO Speed Ratings", "The ISO Speed and ISO Latitude of the camera or input device."},
	"Exif.Photo.BrightnessValue": {"SRational", "Brightness", "The value of brightness."},
	"Exif.Photo.DateTimeOriginal": {"Ascii", "Date and Time (original)",
		"The date and time when the original image data was generated."},
	"Exif.Photo.UserComment":     {"Comment", "User Comment", "A tag for Exif users to write keywords or comments on the image."},
	"Exif.Photo.MakerNote":       {"Undefined", "Maker Note", "A tag for manufacturers of Exif writers to record any desired information."},
	"Exif.GPSInfo.GPSLatitude":   {"Rational", "GPS Latitude", "Indicates the latitude."},
	"Exif.GPSInfo.GPSLongitude":  {"Rational", "GPS Longitude", "Indicates the longitude."},
	"Exif.GPSInfo.GPSAltitude":   {"Rational", "GPS Altitude", "Indicates the altitude based on the reference in GPSAltitudeRef."},
	"Iptc.Application2.Keywords": {"String", "Keywords", "Used to indicate specific information retrieval words."},
	"Iptc.Application2.Subject":  {"String", "Subject", "The subject reference."},
	"Iptc.Application2.Caption":  {"String", "Caption", "A textual description of the object data."},
	"Iptc.Application2.DateCreated": {"Date", "Date Created",
		"Represented in the form CCYYMMDD to designate the date the intellectual content of the object data was created."},
	"Iptc.Application2.TimeCreated": {"Time", "Time Created",
		"Represented in the form HHMMSS:HHMM to designate the time the intellectual content of the object data was created."},
	"Xmp.dc.subject":     {"XmpBag", "Subject", "An unordered array of descriptive phrases or keywords."},
	"Xmp.dc.creator":     {"XmpSeq", "Creator", "The authors of the resource."},
	"Xmp.dc.title":       {"LangAlt", "Title", "The title of the document."},
	"Xmp.dc.description": {"LangAlt", "Description", "A textual description of the content of the resource."},
	"Xmp.dc.rights":      {"LangAlt", "Rights", "Informal rights statement."},
	"Xmp.xmp.Rating":     {"XmpText", "Rating", "A number that indicates a document's status relative to other documents."},
	"Xmp.xmp.Label":      {"XmpText", "Label", "A word or short phrase that identifies a document as a member of a user-defined collection."},
}

func typeOf(tag string) string {
	if info, ok := known[tag]; ok {
		return info.typ
	}
	switch familyOf(tag) {
	case backend.FamilyXmp:
		return "XmpText"
	case backend.FamilyIptc:
		return "String"
	}
	return "Undefined"
}

func (d *Driver) TagLabel(tag string) (string, bool, error) {
	if err := d.checkKey(tag); err != nil {
		return "", false, err
	}
	if info, ok := known[tag]; ok {
		return info.label, true, nil
	}
	return strings.SplitN(tag, ".", 3)[2], true, nil
}

func (d *Driver) TagDescription(tag string) (string, bool, error) {
	if err := d.checkKey(tag); err != nil {
		return "", false, err
	}
	if info, ok := known[tag]; ok {
		return info.desc, true, nil
	}
	return "", true, nil
}

func (d *Driver) TagType(tag string) (string, error) {
	if err := d.checkKey(tag); err != nil {
		return "", err
	}
	return typeOf(tag), nil
}

var builtinNamespaces = map[string]string{
	"dc":             "http://purl.org/dc/elements/1.1/",
	"xmp":            "http://ns.adobe.com/xap/1.0/",
	"xmpRights":      "http://ns.adobe.com/xap/1.0/rights/",
	"exif":           "http://ns.adobe.com/exif/1.0/",
	"tiff":           "http://ns.adobe.com/tiff/1.0/",
	"photoshop":      "http://ns.adobe.com/photoshop/1.0/",
	"Iptc4xmpCore":   "http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/",
	"digiKam":        "http://www.digikam.org/ns/1.0/",
	"lr":             "http://ns.adobe.com/lightroom/1.0/",
	"MicrosoftPhoto": "http://ns.microsoft.com/photo/1.0/",
}

func (d *Driver) namespaceFor(prefix string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if uri, ok := d.namespaces[prefix]; ok {
		return uri, true
	}
	uri, ok := builtinNamespaces[prefix]
	return uri, ok
}

func (d *Driver) RegisterXMPNamespace(name, prefix string) (bool, error) {
	if err := backend.CheckText("namespace", name); err != nil {
		return false, err
	}
	if err := backend.CheckText("prefix", prefix); err != nil {
		return false, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := builtinNamespaces[prefix]; ok {
		return false, nil
	}
	if _, ok := d.namespaces[prefix]; ok {
		return false, nil
	}
	d.namespaces[prefix] = name
	return true, nil
}

func (d *Driver) UnregisterXMPNamespace(name string) (bool, error) {
	if err := backend.CheckText("namespace", name); err != nil {
		return false, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for prefix, uri := range d.namespaces {
		if uri == name {
			delete(d.namespaces, prefix)
			return true, nil
		}
	}
	return false, nil
}

func (d *Driver) UnregisterAllXMPNamespaces() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.namespaces)
	return nil
}

// XMPNamespaceForTag accepts a full key ("Xmp.dc.title") or a bare prefix.
func (d *Driver) XMPNamespaceForTag(tag string) (string, error) {
	if err := backend.CheckText("tag", tag); err != nil {
		return "", err
	}
	prefix := tag
	if parts := strings.SplitN(tag, ".", 3); len(parts) >= 2 && parts[0] == "Xmp" {
		prefix = parts[1]
	}
	uri, ok := d.namespaceFor(prefix)
	if !ok {
		return "", nativeErr(backend.OpOther, backend.DomainGExiv2, exvNoNamespace, "no namespace registered for prefix '"+prefix+"'")
	}
	return uri, nil
}
