package chainhashmap

import (
	"fmt"
	"strings"
)

// String - Renders the logical contents, one {K: key, V: value} entry per line in Entries order
func (H *HashMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Hash Map Entries: [\n")

	entries := H.Entries()
	for i, e := range entries {
		_, _ = fmt.Fprintf(&sb, "    {K: %v, V: %v}", e.Key, e.Value)
		if i < len(entries)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]")

	return sb.String()
}

// Structure - Renders the physical layout, one line per bucket with the chain it holds
func (H *HashMap[K, V]) Structure() string {
	var sb strings.Builder
	sb.WriteString("Hash Map Structure: <\n")
	for i, bucket := range H.buckets {
		_, _ = fmt.Fprintf(&sb, "    Bucket at index %d: %s\n", i, bucket.String())
	}
	sb.WriteString(">")

	return sb.String()
}
