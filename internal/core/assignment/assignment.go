// Package assignment manages the many-to-many links between character
// sheets and jutsus.
//
// The link set is always replaced wholesale: the selector UI submits the
// complete desired set, and the store swaps it in atomically.
package assignment

// SaveInput is the request body for a link replacement.
type SaveInput struct {
	JutsuIDs []string `json:"jutsu_ids"`
}

// Dedupe returns the input ids with duplicates removed, first occurrence
// order preserved.
func Dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
