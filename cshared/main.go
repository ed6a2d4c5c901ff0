// Command cshared builds the harness as a C shared library
// (go build -buildmode=c-shared). It is the only place raw pointers cross
// the memory-management boundary; everything behind it works on Go values.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/binprobe/roundtrip"
)

// oracle is shared process-wide: the case table is immutable and Run is safe
// for concurrent callers.
var oracle = roundtrip.New(nil)

// roundtrip_test_case decodes input_len bytes at input using the type
// registered for id, asserts equality against the canonical value and writes
// the re-encoded canonical bytes through output/output_len.
//
// Ownership transfer: *output points at C heap memory allocated here. The
// caller owns it and must hand it back via roundtrip_release; the reported
// length always equals the output byte count and the pointer is never NULL.
// The input buffer is only borrowed for the duration of the call.
//
// There is no error return: any failure prints a diagnostic to stderr and
// terminates the process, so the driver observes it as a crashed invocation.
//
//export roundtrip_test_case
func roundtrip_test_case(id C.uint8_t, input *C.uint8_t, inputLen C.size_t, output **C.uint8_t, outputLen *C.size_t) {
	var in []byte
	if input != nil && inputLen > 0 {
		in = unsafe.Slice((*byte)(unsafe.Pointer(input)), int(inputLen))
	}

	out, err := oracle.Run(uint8(id), in)
	if err != nil {
		fatal(err)
	}

	*output = cBytes(out)
	*outputLen = C.size_t(len(out))
}

// roundtrip_release returns a buffer produced by roundtrip_test_case.
// The length is part of the ABI pair but free does not need it.
//
//export roundtrip_release
func roundtrip_release(ptr *C.uint8_t, _ C.size_t) {
	C.free(unsafe.Pointer(ptr))
}

// cBytes copies b into C heap memory so the pointer survives the return and
// is never moved or reclaimed by the Go runtime. A zero-length output still
// gets a 1-byte allocation so the returned pointer is valid and non-NULL.
func cBytes(b []byte) *C.uint8_t {
	n := len(b)
	if n == 0 {
		n = 1
	}
	p := C.malloc(C.size_t(n))
	if p == nil {
		fatal(fmt.Errorf("malloc of %d bytes failed", n))
	}
	copy(unsafe.Slice((*byte)(p), n), b)
	return (*C.uint8_t)(p)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "roundtrip: fatal: %v\n", err)
	os.Exit(1)
}

func main() {}
