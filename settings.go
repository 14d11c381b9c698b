package main

import "fmt"

// LabSettings holds the values shared by every rendered configuration.
type LabSettings struct {
	// ASN is the autonomous system of the lab.
	ASN int `yaml:"asn"`
	// VRF is the name of the customer VRF on PE routers.
	VRF string `yaml:"vrf"`
	// RouteTarget is the community value of the VRF route target.
	RouteTarget int `yaml:"route_target"`
	// InterfacePrefix prefixes every point-to-point interface name.
	InterfacePrefix string `yaml:"interface_prefix"`
	// LoopbackInterface names the loopback used as router ID and BGP source.
	LoopbackInterface string `yaml:"loopback_interface"`
	// CustomerInterface names the VRF-bound interface on PE routers.
	CustomerInterface string `yaml:"customer_interface"`
	// CustomerPool is carved into one /24 per router ordinal.
	CustomerPool string `yaml:"customer_pool"`
	OSPFProcess  int    `yaml:"ospf_process"`
	OSPFArea     int    `yaml:"ospf_area"`
}

// DefaultLabSettings returns the settings of the classic MPLS lab.
func DefaultLabSettings() LabSettings {
	return LabSettings{
		ASN:               DefaultASN,
		VRF:               "CUSTOMER_A",
		RouteTarget:       DefaultRouteTarget,
		InterfacePrefix:   "Gi0",
		LoopbackInterface: "Loopback0",
		CustomerInterface: "GigabitEthernet99",
		CustomerPool:      "192.168.0.0/16",
		OSPFProcess:       1,
		OSPFArea:          0,
	}
}

// Validate checks the settings for values no configuration can use.
func (s LabSettings) Validate() error {
	if s.ASN <= 0 || int64(s.ASN) > 4294967295 {
		return fmt.Errorf("asn %d out of range", s.ASN)
	}
	if s.VRF == "" {
		return fmt.Errorf("vrf name must not be empty")
	}
	if s.InterfacePrefix == "" {
		return fmt.Errorf("interface prefix must not be empty")
	}
	if s.LoopbackInterface == "" {
		return fmt.Errorf("loopback interface must not be empty")
	}
	if s.CustomerInterface == "" {
		return fmt.Errorf("customer interface must not be empty")
	}
	if s.OSPFProcess <= 0 {
		return fmt.Errorf("ospf process %d must be positive", s.OSPFProcess)
	}
	if s.OSPFArea < 0 {
		return fmt.Errorf("ospf area %d must not be negative", s.OSPFArea)
	}
	return nil
}
