package flow

import "github.com/openmill/camflow/pkg/types"

// Validate asks every entity in every collection, in registry order, to
// check itself and its name references. Unlike parsing, validation is
// fail-fast: the first invalid entity aborts the walk and is identified
// in the returned error. Use it to gate actions, such as export, that
// must not proceed with an invalid entity anywhere.
func (f *Flow) Validate() error {
	for _, kind := range types.Kinds() {
		for _, e := range f.reg.Collection(kind.Section).Entities() {
			if err := e.Validate(f.reg); err != nil {
				return &types.ValidationError{
					Section: kind.Section,
					Name:    e.Name(),
					Err:     err,
				}
			}
		}
	}
	return nil
}
