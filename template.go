package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/netip"
	"os"
	"text/template"

	"github.com/goccy/go-yaml"
)

//go:embed templates.yaml
var defaultTemplates []byte

// Templates holds configuration templates for each role.
type Templates struct {
	P  string `yaml:"p"`
	PE string `yaml:"pe"`
}

// CustomerInterface is the VRF-bound customer-facing interface of a PE.
type CustomerInterface struct {
	Name    string
	Address netip.Addr
	Mask    string
}

// TemplateData holds data for template rendering.
type TemplateData struct {
	Role              Role
	Hostname          string
	Index             int
	Loopback          netip.Addr
	LoopbackMask      string
	LoopbackInterface string
	Interfaces        []Interface
	Customer          CustomerInterface
	Peers             []netip.Addr

	ASN         int
	VRF         string
	RD          string
	RouteTarget string
	OSPFProcess int
	OSPFArea    int
}

// DefaultTemplates returns the built-in P and PE templates.
func DefaultTemplates() (*Templates, error) {
	return parseTemplates(defaultTemplates)
}

// LoadTemplates loads templates from a YAML file. An empty path selects the
// built-in templates.
func LoadTemplates(path string) (*Templates, error) {
	if path == "" {
		return DefaultTemplates()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseTemplates(data)
}

func parseTemplates(data []byte) (*Templates, error) {
	var t Templates
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if t.P == "" || t.PE == "" {
		return nil, fmt.Errorf("templates must define both p and pe")
	}
	return &t, nil
}

// Render renders the template of role with the given data.
func (t *Templates) Render(role Role, data TemplateData) (string, error) {
	var tmplStr string
	switch role {
	case RoleP:
		tmplStr = t.P
	case RolePE:
		tmplStr = t.PE
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}

	tmpl, err := template.New(string(role)).Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Renderer turns a router and its interfaces into a configuration document.
type Renderer struct {
	templates    *Templates
	settings     LabSettings
	customerPool Pool
}

// NewRenderer creates a renderer for the given templates and settings.
func NewRenderer(templates *Templates, settings LabSettings) (*Renderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	pool, err := ParsePool(settings.CustomerPool)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		templates:    templates,
		settings:     settings,
		customerPool: pool,
	}, nil
}

// PeerLoopbacks returns the BGP peers of r. P routers peer with every other
// router; PE routers peer only with P routers. A router never peers with
// its own loopback.
func PeerLoopbacks(r Router, pLoopbacks, peLoopbacks []netip.Addr) []netip.Addr {
	candidates := pLoopbacks
	if r.Role == RoleP {
		candidates = append(append([]netip.Addr(nil), pLoopbacks...), peLoopbacks...)
	}

	peers := make([]netip.Addr, 0, len(candidates))
	for _, lb := range candidates {
		if lb != r.Loopback {
			peers = append(peers, lb)
		}
	}
	return peers
}

// RenderConfig renders the configuration document of r.
func (re *Renderer) RenderConfig(r Router, interfaces []Interface, pLoopbacks, peLoopbacks []netip.Addr) (string, error) {
	s := re.settings
	data := TemplateData{
		Role:              r.Role,
		Hostname:          r.Hostname,
		Index:             r.Index,
		Loopback:          r.Loopback,
		LoopbackMask:      HostMask,
		LoopbackInterface: s.LoopbackInterface,
		Interfaces:        interfaces,
		Peers:             PeerLoopbacks(r, pLoopbacks, peLoopbacks),
		ASN:               s.ASN,
		VRF:               s.VRF,
		RouteTarget:       RouteTarget(s.ASN, s.RouteTarget),
		OSPFProcess:       s.OSPFProcess,
		OSPFArea:          s.OSPFArea,
	}

	if r.Role == RolePE {
		subnet, err := CustomerSubnet(re.customerPool, r.Index)
		if err != nil {
			return "", err
		}
		data.RD = RouteDistinguisher(s.ASN, r.Index)
		data.Customer = CustomerInterface{
			Name:    s.CustomerInterface,
			Address: CustomerGateway(subnet),
			Mask:    DottedMask(subnet.Bits()),
		}
	}

	conf, err := re.templates.Render(r.Role, data)
	if err != nil {
		return "", fmt.Errorf("failed to render template for %s: %w", r.Hostname, err)
	}
	return conf, nil
}
