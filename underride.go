package simplot

// Underride adds the entries of defaults to d for keys d does not have.
// Existing keys are never overwritten. If d is nil a new map is created.
// The (possibly new) map is returned.
func Underride[K comparable, V any](d map[K]V, defaults map[K]V) map[K]V {
	if d == nil {
		d = make(map[K]V, len(defaults))
	}
	for k, v := range defaults {
		if _, ok := d[k]; !ok {
			d[k] = v
		}
	}
	return d
}
