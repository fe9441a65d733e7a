package stride

// Options controls the checks BytesAs performs before aliasing a buffer.
type Options struct {
	// CheckAlignment rejects spans whose first element or step is not
	// aligned for the element type.
	CheckAlignment bool
}

// SafeOptions is what callers should use unless they know the target
// architecture tolerates unaligned loads.
var SafeOptions = Options{CheckAlignment: true}
