package main

import (
	"net/netip"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var hostnamePattern = regexp.MustCompile(`^(P|PE)-[A-Z]{2}[0-9]{2}$`)

func TestHostnameFormat(t *testing.T) {
	g := NewHostnameGenerator(1)
	for i := 0; i < 50; i++ {
		p := g.Next(RoleP)
		require.Regexp(t, hostnamePattern, p)
		require.Equal(t, "P-", p[:2])

		pe := g.Next(RolePE)
		require.Regexp(t, hostnamePattern, pe)
		require.Equal(t, "PE-", pe[:3])
	}
}

func TestHostnameSeed(t *testing.T) {
	a, b := NewHostnameGenerator(42), NewHostnameGenerator(42)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Next(RolePE), b.Next(RolePE))
	}
}

func TestNewInventory(t *testing.T) {
	loopbacks, err := AllocateLoopbacks(5, MustParsePool("10.255.0.0/24"))
	require.NoError(t, err)

	routers, err := NewInventory(2, 3, loopbacks, NewHostnameGenerator(7))
	require.NoError(t, err)
	require.Len(t, routers, 5)

	for i, r := range routers {
		require.Equal(t, i, r.Index)
		require.Equal(t, loopbacks[i], r.Loopback)
		if i < 2 {
			require.Equal(t, RoleP, r.Role)
		} else {
			require.Equal(t, RolePE, r.Role)
		}
		require.Regexp(t, hostnamePattern, r.Hostname)
	}

	p, pe := Loopbacks(routers)
	require.Equal(t, loopbacks[:2], p)
	require.Equal(t, loopbacks[2:], pe)
}

func TestNewInventoryShortLoopbacks(t *testing.T) {
	_, err := NewInventory(2, 2, []netip.Addr{netip.MustParseAddr("10.255.0.1")}, NewHostnameGenerator(1))
	var exhausted *AddressExhaustionError
	require.ErrorAs(t, err, &exhausted)
}

func TestCountRoles(t *testing.T) {
	routers, err := NewInventory(3, 5, addrs("10.255.0.1", "10.255.0.2", "10.255.0.3", "10.255.0.4",
		"10.255.0.5", "10.255.0.6", "10.255.0.7", "10.255.0.8"), NewHostnameGenerator(1))
	require.NoError(t, err)

	numP, numPE := CountRoles(routers)
	require.Equal(t, 3, numP)
	require.Equal(t, 5, numPE)
}
