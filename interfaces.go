package main

import (
	"fmt"
	"net/netip"
)

// Interface is a point-to-point interface assigned to a router.
type Interface struct {
	Name    string     `yaml:"name"`
	Address netip.Addr `yaml:"address"`
	Mask    string     `yaml:"mask"`
}

// Connection joins the two interfaces of one link.
type Connection struct {
	From  string `yaml:"from"`
	PortA string `yaml:"port_a"`
	IPA   string `yaml:"ip_a,omitempty"`
	To    string `yaml:"to"`
	PortB string `yaml:"port_b"`
	IPB   string `yaml:"ip_b,omitempty"`
}

// Label returns the edge label of a connection, e.g.
// "Gi0/0 (.1) <---> (.2) Gi0/1". Connections without addresses fall back
// to the port names alone.
func (c Connection) Label() string {
	portA, portB := c.PortA, c.PortB
	if portA == "" {
		portA = "??"
	}
	if portB == "" {
		portB = "??"
	}
	if c.IPA == "" || c.IPB == "" {
		return fmt.Sprintf("%s <---> %s", portA, portB)
	}
	return fmt.Sprintf("%s (%s) <---> (%s) %s", portA, HostSuffix(c.IPA), HostSuffix(c.IPB), portB)
}

// AssignInterfaces walks links in order, numbering interfaces per router as
// "<prefix>/<n>" and giving side A and side B the two addresses of the
// matching pair. It returns the interfaces keyed by router index and one
// connection per link in link order.
func AssignInterfaces(routers []Router, links []Link, pairs []AddressPair, prefix string) (map[int][]Interface, []Connection, error) {
	if len(pairs) < len(links) {
		return nil, nil, &AddressExhaustionError{Pool: "p2p", Requested: 2 * len(links), Available: 2 * len(pairs)}
	}

	interfaces := make(map[int][]Interface, len(routers))
	counters := make(map[int]int, len(routers))
	connections := make([]Connection, 0, len(links))

	for i, link := range links {
		if link.A < 0 || link.A >= len(routers) || link.B < 0 || link.B >= len(routers) {
			numP, numPE := CountRoles(routers)
			return nil, nil, &TopologyError{
				NumP:   numP,
				NumPE:  numPE,
				Reason: fmt.Sprintf("link %s references an unknown router", link),
			}
		}
		pair := pairs[i]

		ifA := fmt.Sprintf("%s/%d", prefix, counters[link.A])
		counters[link.A]++
		ifB := fmt.Sprintf("%s/%d", prefix, counters[link.B])
		counters[link.B]++

		interfaces[link.A] = append(interfaces[link.A], Interface{Name: ifA, Address: pair.A, Mask: P2PMask})
		interfaces[link.B] = append(interfaces[link.B], Interface{Name: ifB, Address: pair.B, Mask: P2PMask})

		connections = append(connections, Connection{
			From:  routers[link.A].Hostname,
			PortA: ifA,
			IPA:   pair.A.String(),
			To:    routers[link.B].Hostname,
			PortB: ifB,
			IPB:   pair.B.String(),
		})
	}

	return interfaces, connections, nil
}
