package ports

// Watcher monitors a single file and reports changes to it. Editors often
// replace a file on save (write to temp, rename over), so the adapter must
// watch the parent directory and filter by name.
type Watcher interface {
	// WatchFile starts monitoring path. onChange is called with the absolute
	// path after each debounced write, create, or rename of that file. The
	// callback may be invoked from any goroutine.
	WatchFile(path string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire and none is still running, so
	// Stop must not be called from inside onChange. Safe to call multiple times.
	Stop() error
}
