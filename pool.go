package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// Pool is an IPv4 network that addresses are drawn from.
type Pool struct {
	prefix netip.Prefix
}

// AddressPair holds the two ends of a point-to-point link.
type AddressPair struct {
	A netip.Addr
	B netip.Addr
}

// ParsePool parses an IPv4 network such as "10.0.0.0/24".
// A bare address is treated as a /32. Host bits must be zero.
func ParsePool(s string) (Pool, error) {
	cidr := strings.TrimSpace(s)
	if !strings.Contains(cidr, "/") {
		cidr += "/32"
	}

	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return Pool{}, &MalformedPoolError{Pool: s, Err: err}
	}
	if !prefix.Addr().Is4() {
		return Pool{}, &MalformedPoolError{Pool: s, Err: fmt.Errorf("not an IPv4 network")}
	}
	if prefix.Masked() != prefix {
		return Pool{}, &MalformedPoolError{Pool: s, Err: fmt.Errorf("host bits set")}
	}

	return Pool{prefix: prefix}, nil
}

// MustParsePool is like ParsePool but panics on error.
func MustParsePool(s string) Pool {
	p, err := ParsePool(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Prefix returns the network of the pool.
func (p Pool) Prefix() netip.Prefix {
	return p.prefix
}

func (p Pool) String() string {
	return p.prefix.String()
}

// usable returns the first and last usable host addresses.
// Network and broadcast addresses are excluded except for /31 and /32,
// where every address is a host.
func (p Pool) usable() (first, last uint32) {
	r := netipx.RangeOfPrefix(p.prefix)
	first, last = addrToUint32(r.From()), addrToUint32(r.To())
	if p.prefix.Bits() < 31 {
		first++
		last--
	}
	return first, last
}

// Size returns the number of usable host addresses in the pool.
func (p Pool) Size() int {
	if !p.prefix.IsValid() {
		return 0
	}
	first, last := p.usable()
	return int(last-first) + 1
}

// host returns the n-th usable host address. The caller checks bounds.
func (p Pool) host(n int) netip.Addr {
	first, _ := p.usable()
	return uint32ToAddr(first + uint32(n))
}

// AllocateLoopbacks returns count host addresses in ascending order.
func AllocateLoopbacks(count int, pool Pool) ([]netip.Addr, error) {
	if count < 0 {
		count = 0
	}
	if available := pool.Size(); count > available {
		return nil, &AddressExhaustionError{Pool: pool.String(), Requested: count, Available: available}
	}

	addrs := make([]netip.Addr, 0, count)
	for i := 0; i < count; i++ {
		addrs = append(addrs, pool.host(i))
	}
	return addrs, nil
}

// AllocateLinkPairs returns linkCount pairs of consecutive host addresses.
// The first address of a pair is side A, the second side B.
func AllocateLinkPairs(linkCount int, pool Pool) ([]AddressPair, error) {
	if linkCount < 0 {
		linkCount = 0
	}
	if available := pool.Size(); linkCount > available/2 {
		return nil, &AddressExhaustionError{Pool: pool.String(), Requested: pairAddresses(linkCount), Available: available}
	}

	pairs := make([]AddressPair, 0, linkCount)
	for i := 0; i < linkCount; i++ {
		pairs = append(pairs, AddressPair{
			A: pool.host(2 * i),
			B: pool.host(2*i + 1),
		})
	}
	return pairs, nil
}

// pairAddresses returns the addresses linkCount pairs consume, saturating at
// math.MaxInt.
func pairAddresses(linkCount int) int {
	if linkCount > math.MaxInt/2 {
		return math.MaxInt
	}
	return 2 * linkCount
}

// checkCapacity reports whether the pools hold the loopbacks and link pairs
// of a numP/numPE lab without building its topology first.
func checkCapacity(numP, numPE int, loopbackPool, p2pPool Pool) error {
	if available := loopbackPool.Size(); numP > available || numPE > available-numP {
		requested := math.MaxInt
		if numPE <= math.MaxInt-numP {
			requested = numP + numPE
		}
		return &AddressExhaustionError{Pool: loopbackPool.String(), Requested: requested, Available: available}
	}

	links := LinkCount(numP, numPE)
	if available := p2pPool.Size(); links > available/2 {
		return &AddressExhaustionError{Pool: p2pPool.String(), Requested: pairAddresses(links), Available: available}
	}
	return nil
}

func addrToUint32(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}

func uint32ToAddr(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}
