package main

import (
	"net"
	"net/netip"
	"strings"
)

const (
	// P2PMask is the mask of every point-to-point link subnet.
	P2PMask = "255.255.255.254"

	// HostMask is the mask of a loopback address.
	HostMask = "255.255.255.255"

	// customerSubnetBits is the size of each PE's customer-facing subnet.
	customerSubnetBits = 24
)

// DottedMask returns the dotted-quad form of an IPv4 prefix length.
// Example: 24 -> 255.255.255.0
func DottedMask(bits int) string {
	return net.IP(net.CIDRMask(bits, 32)).String()
}

// CustomerSubnet returns the /24 carved out of pool for the router with the
// given ordinal index. With the default 192.168.0.0/16 pool index 5 yields
// 192.168.5.0/24.
func CustomerSubnet(pool Pool, index int) (netip.Prefix, error) {
	bits := pool.Prefix().Bits()
	if bits > customerSubnetBits {
		return netip.Prefix{}, &AddressExhaustionError{Pool: pool.String(), Requested: index + 1, Available: 0}
	}

	available := 1 << (customerSubnetBits - bits)
	if index < 0 || index >= available {
		return netip.Prefix{}, &AddressExhaustionError{Pool: pool.String(), Requested: index + 1, Available: available}
	}

	base := addrToUint32(pool.Prefix().Addr())
	addr := uint32ToAddr(base + uint32(index)<<(32-customerSubnetBits))
	return netip.PrefixFrom(addr, customerSubnetBits), nil
}

// CustomerGateway returns the PE side address of a customer subnet (.1).
func CustomerGateway(subnet netip.Prefix) netip.Addr {
	return subnet.Addr().Next()
}

// HostSuffix returns the last octet of an IPv4 address with a leading dot.
// Example: 10.0.0.5 -> .5
func HostSuffix(addr string) string {
	if i := strings.LastIndex(addr, "."); i >= 0 {
		return addr[i:]
	}
	return addr
}
