package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kilianp07/servicing/core/factory"
	"github.com/kilianp07/servicing/core/model"
	"github.com/kilianp07/servicing/core/rules"
)

type entry struct {
	name   string
	bundle Bundle
}

// Catalog resolves model names to vehicles. Lookups are case-insensitive.
type Catalog struct {
	version Version
	mu      sync.RWMutex
	models  map[string]entry
}

// New returns a catalog holding the built-in models of the given version.
func New(v Version) *Catalog {
	c := &Catalog{version: v, models: make(map[string]entry)}
	for name, b := range builtins(v) {
		c.models[strings.ToLower(name)] = entry{name: name, bundle: b}
	}
	return c
}

// Version returns the policy version of the built-in models.
func (c *Catalog) Version() Version { return c.version }

// Register adds a model. Names already present, built-in or not, are
// rejected.
func (c *Catalog) Register(name string, b Bundle) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("model name is required")
	}
	if b.Engine == nil || b.Battery == nil {
		return fmt.Errorf("model %s: engine and battery rules are required", name)
	}
	key := strings.ToLower(name)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.models[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateModel, name)
	}
	c.models[key] = entry{name: name, bundle: b}
	return nil
}

// Build constructs a vehicle bound to the named model's rules.
func (c *Catalog) Build(name string) (*model.Vehicle, error) {
	c.mu.RLock()
	e, ok := c.models[strings.ToLower(strings.TrimSpace(name))]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	var opts []model.Option
	if e.bundle.Tire != nil {
		opts = append(opts, model.WithTireRule(e.bundle.Tire))
	}
	return model.NewVehicle(e.name, e.bundle.Engine, e.bundle.Battery, opts...)
}

// Names lists the registered model names in lexical order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.models))
	for _, e := range c.models {
		out = append(out, e.name)
	}
	sort.Strings(out)
	return out
}

// Describe returns the policy summary of the named model.
func (c *Catalog) Describe(name string) (model.Policy, error) {
	v, err := c.Build(name)
	if err != nil {
		return model.Policy{}, err
	}
	return v.Policy(), nil
}

// BundleSpec describes a model's rules in configuration form. An empty Tire
// spec means the model has no tire rule.
type BundleSpec struct {
	Engine  factory.Spec `json:"engine"`
	Battery factory.Spec `json:"battery"`
	Tire    factory.Spec `json:"tire"`
}

// BuildBundle turns a spec into concrete rules.
func BuildBundle(spec BundleSpec) (Bundle, error) {
	var (
		b   Bundle
		err error
	)
	if b.Engine, err = rules.NewEngineRule(spec.Engine); err != nil {
		return Bundle{}, err
	}
	if b.Battery, err = rules.NewBatteryRule(spec.Battery); err != nil {
		return Bundle{}, err
	}
	if !spec.Tire.IsZero() {
		if b.Tire, err = rules.NewTireRule(spec.Tire); err != nil {
			return Bundle{}, err
		}
	}
	return b, nil
}
