//go:build cgo && !windows

package backend

/*
#cgo pkg-config: gexiv2
#include <stdlib.h>
#include <string.h>
#include <glib.h>
*/
import "C"

import (
	"unsafe"
)

// cString converts s to a malloc'd C string. The caller frees it with
// freeCString once the native call has returned.
func cString(what, s string) (*C.gchar, error) {
	if err := CheckText(what, s); err != nil {
		return nil, err
	}
	return (*C.gchar)(unsafe.Pointer(C.CString(s))), nil
}

// cPath is cString for filesystem paths, which may hold non-UTF-8 bytes.
func cPath(path string) (*C.gchar, error) {
	if err := CheckPath(path); err != nil {
		return nil, err
	}
	return (*C.gchar)(unsafe.Pointer(C.CString(path))), nil
}

func freeCString(p *C.gchar) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

// copyString copies a string the native side keeps ownership of.
func copyString(p *C.gchar) (string, bool) {
	if p == nil {
		return "", false
	}
	return C.GoString((*C.char)(unsafe.Pointer(p))), true
}

// takeString copies a string the caller owns and releases it with g_free.
// The Go copy is made before the native memory is freed.
func takeString(p *C.gchar) (string, bool) {
	if p == nil {
		return "", false
	}
	s := C.GoString((*C.char)(unsafe.Pointer(p)))
	C.g_free(C.gpointer(unsafe.Pointer(p)))
	return s, true
}

// takeStrv copies a NULL-terminated gchar** array and releases it with
// g_strfreev. A NULL array is an empty, non-nil slice.
func takeStrv(p **C.gchar) []string {
	out := []string{}
	if p == nil {
		return out
	}
	for i := 0; ; i++ {
		elem := *(**C.gchar)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(p)))
		if elem == nil {
			break
		}
		out = append(out, C.GoString((*C.char)(unsafe.Pointer(elem))))
	}
	C.g_strfreev(p)
	return out
}

// takeBytes copies the contents of a GBytes and drops the caller's reference.
func takeBytes(b *C.GBytes) ([]byte, bool) {
	if b == nil {
		return nil, false
	}
	var size C.gsize
	data := C.g_bytes_get_data(b, &size)
	out := make([]byte, int(size))
	if size > 0 && data != nil {
		copy(out, unsafe.Slice((*byte)(data), int(size)))
	}
	C.g_bytes_unref(b)
	return out, true
}

// cStrv builds a NULL-terminated array of C strings in C memory. The returned
// free function releases every element and the array itself.
func cStrv(what string, values []string) (**C.gchar, func(), error) {
	if err := CheckTexts(what, values); err != nil {
		return nil, nil, err
	}
	ptrSize := unsafe.Sizeof((*C.gchar)(nil))
	arr := C.malloc(C.size_t(len(values)+1) * C.size_t(ptrSize))
	if arr == nil {
		return nil, nil, Failed(StatusUnknown, "failed to allocate string array")
	}
	slots := unsafe.Slice((**C.gchar)(arr), len(values)+1)
	for i, v := range values {
		slots[i] = (*C.gchar)(unsafe.Pointer(C.CString(v)))
	}
	slots[len(values)] = nil
	free := func() {
		for _, p := range slots[:len(values)] {
			C.free(unsafe.Pointer(p))
		}
		C.free(arr)
	}
	return (**C.gchar)(arr), free, nil
}

// takeError copies a GError into an *Error and frees it. The GError message
// is read only after the call has reported failure.
func takeError(op OpClass, gerr *C.GError) *Error {
	if gerr == nil {
		return nil
	}
	domain, _ := copyString(C.g_quark_to_string(gerr.domain))
	msg, _ := copyString(gerr.message)
	code := int(gerr.code)
	C.g_error_free(gerr)
	return &Error{
		Status:  Classify(op, domain, code),
		Domain:  domain,
		Code:    code,
		Message: msg,
	}
}

// check translates the gboolean + GError** convention. A set GError always
// wins; a FALSE result without one is still a failure.
func check(op OpClass, call string, ok C.gboolean, gerr *C.GError) error {
	if err := takeError(op, gerr); err != nil {
		return err
	}
	if ok == 0 {
		return errNoDetail(call)
	}
	return nil
}

// checkVoid translates calls that only report failure through GError.
func checkVoid(op OpClass, gerr *C.GError) error {
	if err := takeError(op, gerr); err != nil {
		return err
	}
	return nil
}
