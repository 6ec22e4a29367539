// Command libopc is the cgo c-shared wrapper spec.md §6 calls out as the
// Type-1 cipher's C ABI: a thin export layer over cipher1.Cipher1. Handles
// are opaque indices into a Go-side table rather than raw Go pointers,
// since cgo's pointer-passing rules forbid C code from holding a Go
// pointer across calls.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct { uint64_t first; uint64_t second; } OPC_Block128;
typedef struct { uint64_t first; uint64_t second; } OPC_Key128;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/cipher1"
)

var (
	handlesMu sync.Mutex
	handles   = map[C.uintptr_t]*cipher1.Cipher1{}
	nextID    C.uintptr_t = 1
)

func lookup(h C.uintptr_t) *cipher1.Cipher1 {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	return handles[h]
}

//export LittleOPC_New
func LittleOPC_New(seed C.uint64_t) C.uintptr_t {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	id := nextID
	nextID++
	handles[id] = cipher1.New(uint64(seed))
	return id
}

//export LittleOPC_Delete
func LittleOPC_Delete(h C.uintptr_t) {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	delete(handles, h)
}

//export LittleOPC_ResetPRNG
func LittleOPC_ResetPRNG(h C.uintptr_t) {
	if c := lookup(h); c != nil {
		c.ResetPRNG()
	}
}

func toBlock(b C.OPC_Block128) cipher1.Block128 {
	return cipher1.Block128{First: uint64(b.first), Second: uint64(b.second)}
}

func toKey(k C.OPC_Key128) cipher1.Key128 {
	return cipher1.Key128{First: uint64(k.first), Second: uint64(k.second)}
}

func fromBlock(b cipher1.Block128) C.OPC_Block128 {
	return C.OPC_Block128{first: C.uint64_t(b.First), second: C.uint64_t(b.Second)}
}

//export LittleOPC_SingleRoundEncryption
func LittleOPC_SingleRoundEncryption(h C.uintptr_t, block C.OPC_Block128, key C.OPC_Key128, nonce C.uint64_t) C.OPC_Block128 {
	c := lookup(h)
	if c == nil {
		return C.OPC_Block128{}
	}
	return fromBlock(c.SingleRoundEncryption(toBlock(block), toKey(key), uint64(nonce)))
}

//export LittleOPC_SingleRoundDecryption
func LittleOPC_SingleRoundDecryption(h C.uintptr_t, block C.OPC_Block128, key C.OPC_Key128, nonce C.uint64_t) C.OPC_Block128 {
	c := lookup(h)
	if c == nil {
		return C.OPC_Block128{}
	}
	return fromBlock(c.SingleRoundDecryption(toBlock(block), toKey(key), uint64(nonce)))
}

func blocksFromC(ptr *C.OPC_Block128, n C.size_t) []cipher1.Block128 {
	raw := unsafe.Slice((*C.OPC_Block128)(ptr), int(n))
	out := make([]cipher1.Block128, n)
	for i, b := range raw {
		out[i] = toBlock(b)
	}
	return out
}

func keysFromC(ptr *C.OPC_Key128, n C.size_t) []cipher1.Key128 {
	raw := unsafe.Slice((*C.OPC_Key128)(ptr), int(n))
	out := make([]cipher1.Key128, n)
	for i, k := range raw {
		out[i] = toKey(k)
	}
	return out
}

func copyBlocksToC(dst *C.OPC_Block128, src []cipher1.Block128) {
	out := unsafe.Slice((*C.OPC_Block128)(dst), len(src))
	for i, b := range src {
		out[i] = fromBlock(b)
	}
}

//export LittleOPC_MultipleRoundsEncryption
func LittleOPC_MultipleRoundsEncryption(h C.uintptr_t, plaintexts *C.OPC_Block128, n C.size_t, keys *C.OPC_Key128, k C.size_t, out *C.OPC_Block128) {
	c := lookup(h)
	if c == nil {
		return
	}
	result := c.MultipleRoundsEncryption(blocksFromC(plaintexts, n), keysFromC(keys, k))
	copyBlocksToC(out, result)
}

//export LittleOPC_MultipleRoundsDecryption
func LittleOPC_MultipleRoundsDecryption(h C.uintptr_t, ciphertexts *C.OPC_Block128, n C.size_t, keys *C.OPC_Key128, k C.size_t, out *C.OPC_Block128) {
	c := lookup(h)
	if c == nil {
		return
	}
	result := c.MultipleRoundsDecryption(blocksFromC(ciphertexts, n), keysFromC(keys, k))
	copyBlocksToC(out, result)
}

//export LittleOPC_GenerateSubkeyWithEncryption
func LittleOPC_GenerateSubkeyWithEncryption(h C.uintptr_t, key C.OPC_Key128, loopCount C.uint64_t) *C.OPC_Block128 {
	c := lookup(h)
	if c == nil || loopCount == 0 {
		return nil
	}
	stream := c.GenerateSubkeyWithEncryption(toKey(key), uint64(loopCount))
	size := C.size_t(len(stream)) * C.size_t(unsafe.Sizeof(C.OPC_Block128{}))
	ptr := (*C.OPC_Block128)(C.malloc(size))
	copyBlocksToC(ptr, stream)
	return ptr
}

//export LittleOPC_FreeBlocks
func LittleOPC_FreeBlocks(ptr *C.OPC_Block128) {
	C.free(unsafe.Pointer(ptr))
}

func main() {}
