package selection

// ComputeOrder maps every tag to its 0-based position in tags.
// The index is used for layout placement only, never for storage order.
// When a tag appears more than once the later position wins.
func ComputeOrder(tags []string) map[string]int {
	order := make(map[string]int, len(tags))
	for i, tag := range tags {
		order[tag] = i
	}
	return order
}
