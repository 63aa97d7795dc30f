package pipeline

// tempSet is the ordered list of intermediate files a run creates. Paths
// are registered before the command that creates them executes, so a
// failure mid-stage still yields a superset cleanup list.
type tempSet struct {
	paths []string
}

func (t *tempSet) add(path string) {
	t.paths = append(t.paths, path)
}

func (t *tempSet) list() []string {
	return append([]string(nil), t.paths...)
}

func (t *tempSet) empty() bool {
	return len(t.paths) == 0
}
