package main

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Params are the inputs of one lab build.
type Params struct {
	NumP         int    `yaml:"p"`
	NumPE        int    `yaml:"pe"`
	LoopbackPool string `yaml:"loopback_pool"`
	P2PPool      string `yaml:"p2p_pool"`
}

// Bundle is the result of a build: the router inventory, the connection
// table in link order and one configuration document per router.
type Bundle struct {
	Routers     []Router          `yaml:"inventory"`
	Connections []Connection      `yaml:"topology"`
	Configs     map[string]string `yaml:"configs"`

	// Documents holds the rendered configurations in router index order.
	// Unlike Configs it keeps every document when hostnames collide.
	Documents []string `yaml:"-"`
}

type options struct {
	Log       *zap.SugaredLogger
	Seed      uint64
	Templates *Templates
	Settings  LabSettings
	Workers   int
}

func newOptions() *options {
	return &options{
		Log:      zap.NewNop().Sugar(),
		Settings: DefaultLabSettings(),
		Workers:  1,
	}
}

// BuildOption configures a lab build.
type BuildOption func(*options)

// WithLog sets the logger of the build.
func WithLog(log *zap.SugaredLogger) BuildOption {
	return func(o *options) {
		o.Log = log
	}
}

// WithSeed seeds the hostname generator. Zero means a clock-based seed.
func WithSeed(seed uint64) BuildOption {
	return func(o *options) {
		o.Seed = seed
	}
}

// WithTemplates replaces the built-in configuration templates.
func WithTemplates(t *Templates) BuildOption {
	return func(o *options) {
		o.Templates = t
	}
}

// WithSettings replaces the default lab settings.
func WithSettings(s LabSettings) BuildOption {
	return func(o *options) {
		o.Settings = s
	}
}

// WithWorkers renders up to n router configurations concurrently.
func WithWorkers(n int) BuildOption {
	return func(o *options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// Build designs the lab described by params. It either returns a complete
// bundle or an error and an empty bundle.
func Build(params Params, opts ...BuildOption) (Bundle, error) {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}
	log := o.Log

	templates := o.Templates
	if templates == nil {
		t, err := DefaultTemplates()
		if err != nil {
			return Bundle{}, err
		}
		templates = t
	}
	renderer, err := NewRenderer(templates, o.Settings)
	if err != nil {
		return Bundle{}, err
	}

	if err := checkCounts(params.NumP, params.NumPE); err != nil {
		return Bundle{}, err
	}
	loopbackPool, err := ParsePool(params.LoopbackPool)
	if err != nil {
		return Bundle{}, err
	}
	p2pPool, err := ParsePool(params.P2PPool)
	if err != nil {
		return Bundle{}, err
	}
	if err := checkCapacity(params.NumP, params.NumPE, loopbackPool, p2pPool); err != nil {
		return Bundle{}, err
	}

	links, err := BuildTopology(params.NumP, params.NumPE)
	if err != nil {
		return Bundle{}, err
	}
	log.Debugw("built topology", "p", params.NumP, "pe", params.NumPE, "links", len(links))

	loopbacks, err := AllocateLoopbacks(params.NumP+params.NumPE, loopbackPool)
	if err != nil {
		return Bundle{}, err
	}
	pairs, err := AllocateLinkPairs(len(links), p2pPool)
	if err != nil {
		return Bundle{}, err
	}
	log.Debugw("allocated addresses",
		"loopback_pool", loopbackPool, "loopbacks", len(loopbacks),
		"p2p_pool", p2pPool, "pairs", len(pairs),
	)

	routers, err := NewInventory(params.NumP, params.NumPE, loopbacks, NewHostnameGenerator(o.Seed))
	if err != nil {
		return Bundle{}, err
	}

	interfaces, connections, err := AssignInterfaces(routers, links, pairs, o.Settings.InterfacePrefix)
	if err != nil {
		return Bundle{}, err
	}

	docs, err := renderAll(renderer, routers, interfaces, o.Workers, log)
	if err != nil {
		return Bundle{}, err
	}

	configs := make(map[string]string, len(routers))
	for i, r := range routers {
		if _, ok := configs[r.Hostname]; ok {
			log.Warnw("hostname collision, configuration replaced in hostname map",
				"hostname", r.Hostname, "index", r.Index)
		}
		configs[r.Hostname] = docs[i]
	}

	log.Infow("lab built", "routers", len(routers), "links", len(links))

	return Bundle{
		Routers:     routers,
		Connections: connections,
		Configs:     configs,
		Documents:   docs,
	}, nil
}

// renderAll renders every router's configuration. Each document depends only
// on its own router, so up to workers documents are rendered at once.
func renderAll(renderer *Renderer, routers []Router, interfaces map[int][]Interface, workers int, log *zap.SugaredLogger) ([]string, error) {
	pLoopbacks, peLoopbacks := Loopbacks(routers)
	docs := make([]string, len(routers))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, r := range routers {
		g.Go(func() error {
			conf, err := renderer.RenderConfig(r, interfaces[r.Index], pLoopbacks, peLoopbacks)
			if err != nil {
				return err
			}
			docs[i] = conf
			log.Debugw("rendered configuration", "hostname", r.Hostname, "role", r.Role, "index", r.Index)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
