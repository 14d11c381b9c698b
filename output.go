package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
)

// documentNames returns a unique name per router document: the hostname,
// with the router index appended when the hostname was already taken.
func documentNames(routers []Router) []string {
	seen := make(map[string]bool, len(routers))
	names := make([]string, 0, len(routers))
	for _, r := range routers {
		name := r.Hostname
		if seen[name] {
			name = fmt.Sprintf("%s-%d", r.Hostname, r.Index)
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// writeConfigs writes one <name>.txt file per router into dir.
func writeConfigs(dir string, bundle Bundle) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(bundle.Routers))
	for i, name := range documentNames(bundle.Routers) {
		path := filepath.Join(dir, name+".txt")
		if err := os.WriteFile(path, []byte(bundle.Documents[i]), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// bundleExport is the machine-readable form of a Bundle. Configs are keyed
// by document name, so colliding hostnames keep every document.
type bundleExport struct {
	Routers     []Router          `yaml:"inventory"`
	Connections []Connection      `yaml:"topology"`
	Configs     map[string]string `yaml:"configs"`
}

func newBundleExport(bundle Bundle) bundleExport {
	configs := make(map[string]string, len(bundle.Documents))
	for i, name := range documentNames(bundle.Routers) {
		configs[name] = bundle.Documents[i]
	}
	return bundleExport{
		Routers:     bundle.Routers,
		Connections: bundle.Connections,
		Configs:     configs,
	}
}

// writeBundle exports the bundle as YAML or JSON.
func writeBundle(w io.Writer, bundle Bundle, format string) error {
	export := newBundleExport(bundle)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = yaml.MarshalWithOptions(export, yaml.JSON())
	case FormatYAML:
		data, err = yaml.MarshalWithOptions(export, yaml.IndentSequence(true), yaml.UseLiteralStyleIfMultiline(true))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// writeConnectionTable prints the interconnect table.
func writeConnectionTable(w io.Writer, connections []Connection) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"From", "Port A", "IP A", "To", "Port B", "IP B", "Link"})
	for _, c := range connections {
		table.Append([]string{c.From, c.PortA, c.IPA, c.To, c.PortB, c.IPB, c.Label()})
	}
	table.Render()
}
