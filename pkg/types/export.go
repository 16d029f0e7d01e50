package types

import "fmt"

// exportSettingsAttributes lists the document fields recognized for
// export settings.
var exportSettingsAttributes = []string{"gcode"}

// ExportSettings describes dialect-specific G-code generation parameters.
// The exporter that consumes them is outside this layer.
type ExportSettings struct {
	object
}

// NewExportSettings constructs export settings from raw document data.
func NewExportSettings(name string, data map[string]any) (Entity, error) {
	obj, err := newObject(name, data, exportSettingsAttributes)
	if err != nil {
		return nil, err
	}
	return &ExportSettings{object: obj}, nil
}

func (es *ExportSettings) Validate(res Resolver) error {
	if es.hasAttr("gcode") {
		if _, ok := es.attr("gcode").(map[string]any); !ok {
			return fmt.Errorf("%w: gcode must be a mapping", ErrInvalidAttribute)
		}
	}
	return nil
}

// exportAttributes lists the document fields recognized for exports.
var exportAttributes = []string{"format", "source", "target"}

// Export describes one export job: which toolpaths to write, in which
// format, to which target.
type Export struct {
	object
}

// NewExport constructs an export from raw document data. Construction is
// tolerant; the required format and source mappings are checked by
// Validate.
func NewExport(name string, data map[string]any) (Entity, error) {
	obj, err := newObject(name, data, exportAttributes)
	if err != nil {
		return nil, err
	}
	return &Export{object: obj}, nil
}

func (e *Export) Validate(res Resolver) error {
	format, err := e.requireMapping("format")
	if err != nil {
		return err
	}
	if settings, ok := format["settings"].(string); ok {
		if err := checkReference(res, SectionExportSettings, settings); err != nil {
			return err
		}
	}
	source, err := e.requireMapping("source")
	if err != nil {
		return err
	}
	sourceType, ok := source["type"].(string)
	if !ok || sourceType == "" {
		return fmt.Errorf("%w: source requires a type", ErrInvalidAttribute)
	}
	if sourceType == "toolpath" {
		items, ok := stringListValue(source["items"])
		if !ok {
			return fmt.Errorf("%w: toolpath source requires an items list", ErrInvalidAttribute)
		}
		for _, item := range items {
			if err := checkReference(res, SectionToolpaths, item); err != nil {
				return err
			}
		}
	}
	return nil
}
