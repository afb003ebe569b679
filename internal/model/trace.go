package model

// TraceModule is one module's slice of a tick-count (.tix) file: the module
// name as recorded by the instrumentation, its compile-time checksum and the
// ordered tick counts, one per instrumented region.
//
// Tick order is the correlation key with the module's metadata file and must
// never be reordered.
type TraceModule struct {
	Name  string
	Hash  uint64
	Ticks []int64
}

// MetadataPath is the metadata file path declared by the trace entry. Module
// names may carry a package prefix ("pkg/Mod.Ule"), so the declared path can
// contain directories.
func (m TraceModule) MetadataPath() Path {
	return Path(m.Name + ".mix")
}
