package main

import "fmt"

const (
	// DefaultASN is the autonomous system shared by every router of the lab.
	DefaultASN = 65000

	// DefaultRouteTarget is the community value of the customer route target.
	DefaultRouteTarget = 100
)

// RouteDistinguisher returns the route distinguisher of a PE's VRF.
// It is keyed by the router's ordinal index, e.g. 65000:3.
func RouteDistinguisher(asn, index int) string {
	return fmt.Sprintf("%d:%d", asn, index)
}

// RouteTarget returns the import/export route target of the customer VRF.
func RouteTarget(asn, community int) string {
	return fmt.Sprintf("%d:%d", asn, community)
}
