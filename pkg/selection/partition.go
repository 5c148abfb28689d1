package selection

// Partition returns the tags that are not in selected, keeping the
// relative order of tags. It is always recomputed from both inputs.
func Partition(tags, selected []string) []string {
	chosen := make(map[string]struct{}, len(selected))
	for _, tag := range selected {
		chosen[tag] = struct{}{}
	}

	notSelected := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := chosen[tag]; !ok {
			notSelected = append(notSelected, tag)
		}
	}
	return notSelected
}
