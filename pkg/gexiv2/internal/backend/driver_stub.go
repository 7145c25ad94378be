//go:build !cgo || windows

package backend

// stubDriver is linked when cgo is unavailable. Every entry point fails with
// ErrNotBuilt so callers can detect the build and skip.
type stubDriver struct{}

// Native returns a Driver whose every operation reports ErrNotBuilt.
func Native() Driver { return stubDriver{} }

func (stubDriver) Initialize() error { return ErrNotBuilt }
func (stubDriver) Version() string   { return "" }

func (stubDriver) New() (Handle, error)                 { return 0, ErrNotBuilt }
func (stubDriver) Free(Handle) bool                     { return false }
func (stubDriver) OpenPath(Handle, string) error        { return ErrNotBuilt }
func (stubDriver) OpenBuffer(Handle, []byte) error      { return ErrNotBuilt }
func (stubDriver) OpenApp1Segment(Handle, []byte) error { return ErrNotBuilt }
func (stubDriver) SaveFile(Handle, string) error        { return ErrNotBuilt }
func (stubDriver) SaveExternal(Handle, string) error    { return ErrNotBuilt }

func (stubDriver) Supports(Handle, Family) (bool, error)  { return false, ErrNotBuilt }
func (stubDriver) MimeType(Handle) (string, bool, error)  { return "", false, ErrNotBuilt }
func (stubDriver) PixelWidth(Handle) (int, error)         { return 0, ErrNotBuilt }
func (stubDriver) PixelHeight(Handle) (int, error)        { return 0, ErrNotBuilt }
func (stubDriver) HasTag(Handle, string) (bool, error)    { return false, ErrNotBuilt }
func (stubDriver) ClearTag(Handle, string) (bool, error)  { return false, ErrNotBuilt }
func (stubDriver) Clear(Handle) error                     { return ErrNotBuilt }
func (stubDriver) HasFamily(Handle, Family) (bool, error) { return false, ErrNotBuilt }
func (stubDriver) ClearFamily(Handle, Family) error       { return ErrNotBuilt }
func (stubDriver) Tags(Handle, Family) ([]string, error)  { return nil, ErrNotBuilt }
func (stubDriver) TagSupportsMultipleValues(Handle, string) (bool, error) {
	return false, ErrNotBuilt
}

func (stubDriver) TagString(Handle, string) (string, bool, error) { return "", false, ErrNotBuilt }
func (stubDriver) TagInterpretedString(Handle, string) (string, bool, error) {
	return "", false, ErrNotBuilt
}
func (stubDriver) SetTagString(Handle, string, string) error     { return ErrNotBuilt }
func (stubDriver) TagMultiple(Handle, string) ([]string, error)  { return nil, ErrNotBuilt }
func (stubDriver) SetTagMultiple(Handle, string, []string) error { return ErrNotBuilt }
func (stubDriver) TagLong(Handle, string) (int64, bool, error)   { return 0, false, ErrNotBuilt }
func (stubDriver) SetTagLong(Handle, string, int64) error        { return ErrNotBuilt }
func (stubDriver) TagRational(Handle, string) (int32, int32, bool, error) {
	return 0, 0, false, ErrNotBuilt
}
func (stubDriver) SetTagRational(Handle, string, int32, int32) error { return ErrNotBuilt }
func (stubDriver) TagRaw(Handle, string) ([]byte, bool, error)       { return nil, false, ErrNotBuilt }

func (stubDriver) Orientation(Handle) (int, error)  { return 0, ErrNotBuilt }
func (stubDriver) SetOrientation(Handle, int) error { return ErrNotBuilt }
func (stubDriver) ExposureTime(Handle) (int32, int32, bool, error) {
	return 0, 0, false, ErrNotBuilt
}
func (stubDriver) FNumber(Handle) (float64, bool, error)     { return 0, false, ErrNotBuilt }
func (stubDriver) FocalLength(Handle) (float64, bool, error) { return 0, false, ErrNotBuilt }
func (stubDriver) ISOSpeed(Handle) (int, bool, error)        { return 0, false, ErrNotBuilt }
func (stubDriver) GPSInfo(Handle) (float64, float64, float64, bool, error) {
	return 0, 0, 0, false, ErrNotBuilt
}
func (stubDriver) SetGPSInfo(Handle, float64, float64, float64) error { return ErrNotBuilt }
func (stubDriver) DeleteGPSInfo(Handle) error                         { return ErrNotBuilt }
func (stubDriver) Comment(Handle) (string, bool, error)               { return "", false, ErrNotBuilt }
func (stubDriver) SetComment(Handle, string) error                    { return ErrNotBuilt }
func (stubDriver) XMPPacket(Handle) (string, bool, error)             { return "", false, ErrNotBuilt }
func (stubDriver) GenerateXMPPacket(Handle, uint32, uint32) (string, bool, error) {
	return "", false, ErrNotBuilt
}

func (stubDriver) IsTag(Family, string) bool                         { return false }
func (stubDriver) TagLabel(string) (string, bool, error)             { return "", false, ErrNotBuilt }
func (stubDriver) TagDescription(string) (string, bool, error)       { return "", false, ErrNotBuilt }
func (stubDriver) TagType(string) (string, error)                    { return "", ErrNotBuilt }
func (stubDriver) RegisterXMPNamespace(string, string) (bool, error) { return false, ErrNotBuilt }
func (stubDriver) UnregisterXMPNamespace(string) (bool, error)       { return false, ErrNotBuilt }
func (stubDriver) UnregisterAllXMPNamespaces() error                 { return ErrNotBuilt }
func (stubDriver) XMPNamespaceForTag(string) (string, error)         { return "", ErrNotBuilt }
