package backend

// Status is the closed set of outcomes a native failure is classified into.
type Status int

const (
	StatusUnknown Status = iota
	StatusNotFound
	StatusUnreadable
	StatusPermissionDenied
	StatusUnsupportedFormat
	StatusInvalidInput
	StatusWriteFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "not found"
	case StatusUnreadable:
		return "unreadable"
	case StatusPermissionDenied:
		return "permission denied"
	case StatusUnsupportedFormat:
		return "unsupported format"
	case StatusInvalidInput:
		return "invalid input"
	case StatusWriteFailed:
		return "write failed"
	default:
		return "unknown failure"
	}
}

// OpClass tells Classify what kind of call failed, for codes whose meaning
// depends on the direction of the I/O.
type OpClass int

const (
	OpOther OpClass = iota
	OpOpen
	OpSave
)

// Error domains as reported by g_quark_to_string.
const (
	DomainGIO    = "g-io-error-quark"
	DomainGExiv2 = "GExiv2"
)

// GIOErrorEnum values used by gexiv2.
const (
	gioFailed           = 0
	gioNotFound         = 1
	gioIsDirectory      = 3
	gioInvalidFilename  = 10
	gioNoSpace          = 12
	gioInvalidArgument  = 13
	gioPermissionDenied = 14
	gioNotSupported     = 15
	gioReadOnly         = 19
)

// Exiv2::ErrorCode values. gexiv2 forwards them as the GError code in the
// GExiv2 domain.
const (
	exvNotAnImage                       = 4
	exvInvalidDataset                   = 5
	exvInvalidRecord                    = 6
	exvInvalidKey                       = 7
	exvInvalidTag                       = 8
	exvDataSourceOpenFailed             = 10
	exvFileOpenFailed                   = 11
	exvFileContainsUnknownImageType     = 12
	exvMemoryContainsUnknownImageType   = 13
	exvUnsupportedImageType             = 14
	exvFailedToReadImageData            = 15
	exvNotAJpeg                         = 16
	exvFailedToMapFileForReadWrite      = 17
	exvFileRenameFailed                 = 18
	exvTransferFailed                   = 19
	exvMemoryTransferFailed             = 20
	exvInputDataReadFailed              = 21
	exvImageWriteFailed                 = 22
	exvNoImageInInputData               = 23
	exvValueTooLarge                    = 25
	exvInvalidCharset                   = 29
	exvUnsupportedDateFormat            = 30
	exvUnsupportedTimeFormat            = 31
	exvWritingImageFormatUnsupported    = 32
	exvNotACrwImage                     = 34
	exvNoNamespaceInfoForXmpPrefix      = 36
	exvNoPrefixForNamespace             = 37
	exvTooLargeJpegSegment              = 38
	exvSchemaNamespaceNotRegistered     = 46
	exvNoNamespaceForPrefix             = 47
	exvInvalidXmpText                   = 49
	exvInvalidKeyXmpValue               = 53
	exvInvalidXMP                       = 55
	exvInvalidTypeValue                 = 57
	exvInvalidLangAltValue              = 58
	exvCorruptedMetadata                = 60
)

// Classify maps a native error domain and code to a Status. Codes that are
// not recognised fall back on the operation class: open failures mean the
// content was rejected, save failures mean persisting failed.
func Classify(op OpClass, domain string, code int) Status {
	switch domain {
	case DomainGIO:
		if s, ok := classifyGIO(op, code); ok {
			return s
		}
	case DomainGExiv2:
		if s, ok := classifyExiv2(op, code); ok {
			return s
		}
	}
	switch op {
	case OpOpen:
		return StatusUnsupportedFormat
	case OpSave:
		return StatusWriteFailed
	default:
		return StatusUnknown
	}
}

func classifyGIO(op OpClass, code int) (Status, bool) {
	switch code {
	case gioNotFound:
		return StatusNotFound, true
	case gioPermissionDenied, gioReadOnly:
		return StatusPermissionDenied, true
	case gioInvalidArgument, gioInvalidFilename:
		return StatusInvalidInput, true
	case gioIsDirectory:
		if op == OpSave {
			return StatusWriteFailed, true
		}
		return StatusUnreadable, true
	case gioNotSupported:
		if op == OpSave {
			return StatusWriteFailed, true
		}
		return StatusUnsupportedFormat, true
	case gioNoSpace:
		return StatusWriteFailed, true
	case gioFailed:
		return 0, false
	}
	return 0, false
}

func classifyExiv2(op OpClass, code int) (Status, bool) {
	switch code {
	case exvNotAnImage, exvFileContainsUnknownImageType, exvMemoryContainsUnknownImageType,
		exvUnsupportedImageType, exvNotAJpeg, exvNoImageInInputData, exvNotACrwImage,
		exvFailedToReadImageData, exvInputDataReadFailed, exvCorruptedMetadata,
		exvTooLargeJpegSegment:
		if op == OpSave {
			return StatusWriteFailed, true
		}
		return StatusUnsupportedFormat, true
	case exvInvalidDataset, exvInvalidRecord, exvInvalidKey, exvInvalidTag,
		exvValueTooLarge, exvInvalidCharset, exvUnsupportedDateFormat, exvUnsupportedTimeFormat,
		exvNoNamespaceInfoForXmpPrefix, exvNoPrefixForNamespace, exvSchemaNamespaceNotRegistered,
		exvNoNamespaceForPrefix, exvInvalidXmpText, exvInvalidKeyXmpValue, exvInvalidXMP,
		exvInvalidTypeValue, exvInvalidLangAltValue:
		return StatusInvalidInput, true
	case exvDataSourceOpenFailed, exvFileOpenFailed:
		if op == OpSave {
			return StatusWriteFailed, true
		}
		return StatusUnreadable, true
	case exvFailedToMapFileForReadWrite, exvFileRenameFailed, exvTransferFailed,
		exvMemoryTransferFailed, exvImageWriteFailed, exvWritingImageFormatUnsupported:
		return StatusWriteFailed, true
	}
	return 0, false
}
