package main

import (
	"fmt"
	"math/rand/v2"
	"net/netip"
	"time"
)

// Role is the function of a router in the lab.
type Role string

const (
	// RoleP is a core router acting as VPNv4 route reflector.
	RoleP Role = "P"
	// RolePE is an edge router terminating the customer VRF.
	RolePE Role = "PE"
)

// Router is one device of the lab. Index is the identity key; Hostname is a
// label and may collide with another router's.
type Router struct {
	Role     Role       `yaml:"type"`
	Hostname string     `yaml:"hostname"`
	Loopback netip.Addr `yaml:"loopback"`
	Index    int        `yaml:"index"`
}

const (
	hostnameLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	hostnameDigits  = "0123456789"
)

// HostnameGenerator produces role-prefixed hostnames such as "PE-KD42".
type HostnameGenerator struct {
	rnd *rand.Rand
}

// NewHostnameGenerator returns a generator seeded with seed.
// A zero seed draws the seed from the clock.
func NewHostnameGenerator(seed uint64) *HostnameGenerator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &HostnameGenerator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns a hostname for role: two random letters and two random digits.
func (g *HostnameGenerator) Next(role Role) string {
	var suffix [4]byte
	for i := 0; i < 2; i++ {
		suffix[i] = hostnameLetters[g.rnd.IntN(len(hostnameLetters))]
	}
	for i := 2; i < 4; i++ {
		suffix[i] = hostnameDigits[g.rnd.IntN(len(hostnameDigits))]
	}
	return fmt.Sprintf("%s-%s", role, suffix[:])
}

// NewInventory zips generated hostnames with loopbacks into router records:
// numP P routers first, then numPE PE routers.
func NewInventory(numP, numPE int, loopbacks []netip.Addr, names *HostnameGenerator) ([]Router, error) {
	total := numP + numPE
	if len(loopbacks) < total {
		return nil, &AddressExhaustionError{Pool: "loopback", Requested: total, Available: len(loopbacks)}
	}

	routers := make([]Router, 0, total)
	for i := 0; i < total; i++ {
		role := RoleP
		if i >= numP {
			role = RolePE
		}
		routers = append(routers, Router{
			Role:     role,
			Hostname: names.Next(role),
			Loopback: loopbacks[i],
			Index:    i,
		})
	}
	return routers, nil
}

// Loopbacks splits router loopbacks by role, preserving ordinal order.
func Loopbacks(routers []Router) (p, pe []netip.Addr) {
	for _, r := range routers {
		switch r.Role {
		case RoleP:
			p = append(p, r.Loopback)
		case RolePE:
			pe = append(pe, r.Loopback)
		}
	}
	return p, pe
}

// CountRoles returns the number of P and PE routers.
func CountRoles(routers []Router) (numP, numPE int) {
	for _, r := range routers {
		switch r.Role {
		case RoleP:
			numP++
		case RolePE:
			numPE++
		}
	}
	return numP, numPE
}
