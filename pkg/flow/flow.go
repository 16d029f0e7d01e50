package flow

import (
	"fmt"
	"log/slog"

	"github.com/openmill/camflow/pkg/types"
)

// Flow binds a registry to the parse, dump, and validate operations.
// All operations are synchronous and assume a single logical writer;
// concurrent use requires external mutual exclusion.
type Flow struct {
	reg *types.Registry
	log *slog.Logger
}

// Option configures a Flow.
type Option func(*Flow)

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(f *Flow) {
		f.log = log
	}
}

// New returns a Flow operating on the given registry.
func New(reg *types.Registry, opts ...Option) *Flow {
	f := &Flow{reg: reg, log: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Registry returns the registry the Flow operates on.
func (f *Flow) Registry() *types.Registry {
	return f.reg
}

// checkSections panics when the excluded-section argument contains values
// outside the closed section enumeration. Passing an unknown section is a
// programmer error, not a runtime data error.
func checkSections(excluded []types.Section) map[types.Section]bool {
	set := make(map[types.Section]bool, len(excluded))
	for _, s := range excluded {
		if !s.IsValid() {
			panic(fmt.Sprintf("flow: invalid excluded section %q", string(s)))
		}
		set[s] = true
	}
	return set
}
