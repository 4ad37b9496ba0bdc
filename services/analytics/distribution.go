package analytics

// DistributionBy groups an already-fetched entity slice by the string the
// key function extracts, counting occurrences. Entities with an empty key
// are skipped. Pure function, no I/O; the dashboard uses it for category
// and location breakdowns.
func DistributionBy[T any](items []T, key func(T) string) map[string]int {
	dist := make(map[string]int)
	for _, item := range items {
		k := key(item)
		if k == "" {
			continue
		}
		dist[k]++
	}
	return dist
}
