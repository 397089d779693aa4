// Package spread mixes raw hash codes before bucket placement in open-addressed
// hash tables, so that keys differing in few bits land far apart.
//
// One and Two are independent mixers intended for double hashing: a table probes
// with One and steps with Two. All functions are pure and allocation free.
package spread

import "math"

// One is the murmur3 32-bit finalizer.
func One(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Two is a 32-bit xor-shift/multiply mixer with constants unrelated to One's.
func Two(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}

// One64 is the murmur3 64-bit finalizer.
func One64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// Two64 is the SplitMix64 finalizer.
func Two64(h uint64) uint64 {
	h = (h ^ (h >> 30)) * 0xbf58476d1ce4e5b9
	h = (h ^ (h >> 27)) * 0x94d049bb133111eb
	return h ^ (h >> 31)
}

// Fold64 folds a 64-bit hash into 32 bits, keeping entropy from both halves.
func Fold64(h uint64) uint32 {
	return uint32(h ^ (h >> 32))
}

func OneInt32(v int32) uint32 { return One(uint32(v)) }
func TwoInt32(v int32) uint32 { return Two(uint32(v)) }

func OneInt64(v int64) uint64 { return One64(uint64(v)) }
func TwoInt64(v int64) uint64 { return Two64(uint64(v)) }

// OneInt16 sign-extends v before mixing.
func OneInt16(v int16) uint32 { return One(uint32(int32(v))) }
func TwoInt16(v int16) uint32 { return Two(uint32(int32(v))) }

// OneUint16 mixes a UTF-16 code unit, zero-extended.
func OneUint16(v uint16) uint32 { return One(uint32(v)) }
func TwoUint16(v uint16) uint32 { return Two(uint32(v)) }

// OneFloat64 mixes the IEEE 754 bit pattern of v, so 0.0 and -0.0 differ and
// every NaN payload hashes separately.
func OneFloat64(v float64) uint64 { return One64(math.Float64bits(v)) }
func TwoFloat64(v float64) uint64 { return Two64(math.Float64bits(v)) }

func OneFloat32(v float32) uint32 { return One(math.Float32bits(v)) }
func TwoFloat32(v float32) uint32 { return Two(math.Float32bits(v)) }
