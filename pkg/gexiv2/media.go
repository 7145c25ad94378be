package gexiv2

import "github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"

// MediaType returns the MIME type of the image, such as "image/jpeg". ok is
// false for Metadata not loaded from an image.
func (m *Metadata) MediaType() (mime string, ok bool, err error) {
	err = m.do("media-type", "", func(d backend.Driver, h backend.Handle) (err error) {
		mime, ok, err = d.MimeType(h)
		return err
	})
	return mime, ok, err
}

func (m *Metadata) supports(op string, f backend.Family) (bool, error) {
	var ok bool
	err := m.do(op, "", func(d backend.Driver, h backend.Handle) (err error) {
		ok, err = d.Supports(h, f)
		return err
	})
	return ok, err
}

// SupportsExif reports whether the image format can hold Exif metadata.
func (m *Metadata) SupportsExif() (bool, error) { return m.supports("supports-exif", backend.FamilyExif) }

// SupportsXmp reports whether the image format can hold XMP metadata.
func (m *Metadata) SupportsXmp() (bool, error) { return m.supports("supports-xmp", backend.FamilyXmp) }

// SupportsIptc reports whether the image format can hold IPTC metadata.
func (m *Metadata) SupportsIptc() (bool, error) { return m.supports("supports-iptc", backend.FamilyIptc) }

// PixelWidth returns the width of the image in pixels, as read from the
// image itself rather than from any tag.
func (m *Metadata) PixelWidth() (int, error) {
	var w int
	err := m.do("pixel-width", "", func(d backend.Driver, h backend.Handle) (err error) {
		w, err = d.PixelWidth(h)
		return err
	})
	return w, err
}

// PixelHeight returns the height of the image in pixels.
func (m *Metadata) PixelHeight() (int, error) {
	var ht int
	err := m.do("pixel-height", "", func(d backend.Driver, h backend.Handle) (err error) {
		ht, err = d.PixelHeight(h)
		return err
	})
	return ht, err
}

// XMPPacket returns the XMP packet as read from the image. ok is false when
// the image carries none.
func (m *Metadata) XMPPacket() (packet string, ok bool, err error) {
	err = m.do("xmp-packet", "", func(d backend.Driver, h backend.Handle) (err error) {
		packet, ok, err = d.XMPPacket(h)
		return err
	})
	return packet, ok, err
}

// XMPFormat holds Exiv2's XMP serialisation flags for GenerateXMPPacket.
type XMPFormat uint32

const (
	XMPOmitPacketWrapper   XMPFormat = 0x0010
	XMPReadOnlyPacket      XMPFormat = 0x0020
	XMPUseCompactFormat    XMPFormat = 0x0040
	XMPIncludeThumbnailPad XMPFormat = 0x0100
	XMPExactPacketLength   XMPFormat = 0x0200
	XMPWriteAliasComments  XMPFormat = 0x0400
	XMPOmitAllFormatting   XMPFormat = 0x0800
)

// GenerateXMPPacket serialises the current XMP tags. padding is the number of
// bytes of whitespace reserved for in-place edits.
func (m *Metadata) GenerateXMPPacket(flags XMPFormat, padding uint32) (packet string, ok bool, err error) {
	err = m.do("generate-xmp-packet", "", func(d backend.Driver, h backend.Handle) (err error) {
		packet, ok, err = d.GenerateXMPPacket(h, uint32(flags), padding)
		return err
	})
	return packet, ok, err
}
