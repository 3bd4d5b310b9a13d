// Package mmio provides volatile access to 32-bit memory mapped registers.
//
// Accesses compile to single loads and stores that the compiler won't tear,
// merge or elide, which makes the cells usable both on device memory and on
// plain RAM in host tests.
package mmio

import (
	"sync/atomic"
	"unsafe"
)

// T32 constrains the types a typed register can hold.
type T32 interface {
	~uint32
}

// U32 is an untyped 32-bit register.
type U32 struct {
	r uint32
}

func (r *U32) Load() uint32   { return atomic.LoadUint32(&r.r) }
func (r *U32) Store(v uint32) { atomic.StoreUint32(&r.r, v) }

// LoadBits returns the register value masked with mask.
func (r *U32) LoadBits(mask uint32) uint32 { return r.Load() & mask }

// StoreBits sets the masked bits to bits&mask, preserving all others.
func (r *U32) StoreBits(mask, bits uint32) { r.Store(r.Load()&^mask | bits&mask) }

func (r *U32) SetBits(mask uint32)   { r.Store(r.Load() | mask) }
func (r *U32) ClearBits(mask uint32) { r.Store(r.Load() &^ mask) }

func (r *U32) Addr() uintptr { return uintptr(unsafe.Pointer(&r.r)) }

// R32 is a 32-bit register holding values of type T, typically a bitmask
// type.
type R32[T T32] struct {
	r U32
}

func (r *R32[T]) Load() T   { return T(r.r.Load()) }
func (r *R32[T]) Store(v T) { r.r.Store(uint32(v)) }

func (r *R32[T]) LoadBits(mask T) T      { return T(r.r.LoadBits(uint32(mask))) }
func (r *R32[T]) StoreBits(mask, bits T) { r.r.StoreBits(uint32(mask), uint32(bits)) }

func (r *R32[T]) SetBits(mask T)   { r.r.SetBits(uint32(mask)) }
func (r *R32[T]) ClearBits(mask T) { r.r.ClearBits(uint32(mask)) }

func (r *R32[T]) Addr() uintptr { return r.r.Addr() }
