package iterator

// GetChildrenNames returns the base names of root's immediate children.
func GetChildrenNames(root string) ([]string, error) {
	it, err := New(root)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var names []string
	for {
		entry, err := it.Next(StopOnError)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return names, nil
		}
		names = append(names, entry.Name)
	}
}

// GetChildrenCount returns the number of immediate children of root.
func GetChildrenCount(root string) (int, error) {
	it, err := New(root)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	count := 0
	for {
		entry, err := it.Next(StopOnError)
		if err != nil {
			return 0, err
		}
		if entry == nil {
			return count, nil
		}
		count++
	}
}

// GetAllDescendantsFullPaths returns the full OS path of every entry beneath
// root, in pre-order, following symlinked directories only if followSymlinks
// is set.
func GetAllDescendantsFullPaths(root string, followSymlinks bool) ([]string, error) {
	opts := FullPaths | StopOnError
	if followSymlinks {
		opts |= FollowSymlinks
	}
	r, err := NewRecursive(root, -1, opts)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var paths []string
	for {
		entry, err := r.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return paths, nil
		}
		paths = append(paths, entry.Path)
	}
}

// GetDescendantCount returns the total number of entries beneath root, at
// any depth.
func GetDescendantCount(root string) (int, error) {
	r, err := NewRecursive(root, -1, StopOnError)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	count := 0
	for {
		entry, err := r.Next()
		if err != nil {
			return 0, err
		}
		if entry == nil {
			return count, nil
		}
		count++
	}
}
