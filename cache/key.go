package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Arg is one named argument of a cached operation.
type Arg struct {
	Name  string
	Value interface{}
}

// Key builds a deterministic cache key for an operation call. Arguments
// are normalized by name before hashing, so two call sites passing the
// same arguments in a different order collide on the same key.
func Key(op string, args ...Arg) string {
	sorted := make([]Arg, len(args))
	copy(sorted, args)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var sb strings.Builder
	for _, a := range sorted {
		fmt.Fprintf(&sb, "%s=%v;", a.Name, a.Value)
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return op + ":" + hex.EncodeToString(sum[:])
}
