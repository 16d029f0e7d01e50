// Package types defines the entity kinds, collections, and registry that
// make up a camflow project: the closed set of sections (tools, processes,
// bounds, tasks, models, toolpaths, export_settings, exports), the Entity
// contract each kind satisfies, and the ordered Registry that parser,
// serializer, and validator walk.
package types
