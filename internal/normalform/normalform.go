// Package normalform analyzes relation schemas against the classical normal
// forms (1NF through 5NF). Relations here are exam-sized - a handful of
// attributes - so candidate key discovery can afford to walk the whole
// attribute lattice.
package normalform

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// Form is a normal form in the usual hierarchy. Unnormalized means the
// relation does not even reach 1NF.
type Form int

const (
	Unnormalized Form = iota
	FirstNF
	SecondNF
	ThirdNF
	BoyceCoddNF
	FourthNF
	FifthNF
)

var formNames = map[Form]string{
	Unnormalized: "UNF",
	FirstNF:      "1NF",
	SecondNF:     "2NF",
	ThirdNF:      "3NF",
	BoyceCoddNF:  "BCNF",
	FourthNF:     "4NF",
	FifthNF:      "5NF",
}

func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

func (f Form) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// Relation describes a table heading. NonAtomic lists columns whose values
// pack repeating groups (comma-separated lists and the like), which is what
// 1NF forbids.
type Relation struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes"`
	NonAtomic  []string `json:"non_atomic,omitempty"`
}

// FD is a functional dependency From -> To.
type FD struct {
	From []string `json:"from"`
	To   []string `json:"to"`
}

func (fd FD) String() string {
	return fmt.Sprintf("{%s} -> {%s}", strings.Join(fd.From, ", "), strings.Join(fd.To, ", "))
}

// MVD is a multivalued dependency From ->> To.
type MVD struct {
	From []string `json:"from"`
	To   []string `json:"to"`
}

func (m MVD) String() string {
	return fmt.Sprintf("{%s} ->> {%s}", strings.Join(m.From, ", "), strings.Join(m.To, ", "))
}

// JoinDependency asserts that the relation is the lossless join of the
// projections onto its components.
type JoinDependency struct {
	Components [][]string `json:"components"`
}

func (j JoinDependency) String() string {
	parts := make([]string, 0, len(j.Components))
	for _, comp := range j.Components {
		parts = append(parts, "("+strings.Join(comp, ", ")+")")
	}
	return "*(" + strings.Join(parts, ", ") + ")"
}

// Dependencies bundles everything declared about a relation.
type Dependencies struct {
	FDs  []FD            `json:"fds,omitempty"`
	MVDs []MVD           `json:"mvds,omitempty"`
	Join *JoinDependency `json:"join,omitempty"`
}

// Closure computes the attribute-set closure of attrs under fds by fixed
// point. The result is sorted.
func Closure(attrs []string, fds []FD) []string {
	closure := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		closure[a] = struct{}{}
	}

	for changed := true; changed; {
		changed = false
		for _, fd := range fds {
			if !containsAll(closure, fd.From) {
				continue
			}
			for _, a := range fd.To {
				if _, ok := closure[a]; !ok {
					closure[a] = struct{}{}
					changed = true
				}
			}
		}
	}

	out := make([]string, 0, len(closure))
	for a := range closure {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// IsSuperkey reports whether attrs functionally determine every attribute of
// the relation.
func IsSuperkey(rel Relation, attrs []string, fds []FD) bool {
	closure := Closure(attrs, fds)
	set := make(map[string]struct{}, len(closure))
	for _, a := range closure {
		set[a] = struct{}{}
	}
	return containsAll(set, rel.Attributes)
}

// CandidateKeys returns every minimal key of the relation, each in declared
// attribute order, ordered by size and then lexically. The walk is
// exponential in the attribute count, which is fine at this scale.
func CandidateKeys(rel Relation, fds []FD) [][]string {
	n := len(rel.Attributes)
	if n == 0 {
		return nil
	}

	masks := make([]uint32, 0, 1<<n)
	for mask := uint32(1); mask < 1<<n; mask++ {
		masks = append(masks, mask)
	}
	// Visiting smaller sets first means any key found is minimal as long as
	// no already-found key is a subset of it.
	sort.Slice(masks, func(i, j int) bool {
		bi, bj := bits.OnesCount32(masks[i]), bits.OnesCount32(masks[j])
		if bi != bj {
			return bi < bj
		}
		return masks[i] < masks[j]
	})

	var keys [][]string
	var keyMasks []uint32
	for _, mask := range masks {
		superset := false
		for _, km := range keyMasks {
			if mask&km == km {
				superset = true
				break
			}
		}
		if superset {
			continue
		}
		attrs := attrsFromMask(rel.Attributes, mask)
		if IsSuperkey(rel, attrs, fds) {
			keyMasks = append(keyMasks, mask)
			keys = append(keys, attrs)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return strings.Join(keys[i], ",") < strings.Join(keys[j], ",")
	})
	return keys
}

func attrsFromMask(attributes []string, mask uint32) []string {
	attrs := make([]string, 0, bits.OnesCount32(mask))
	for i, a := range attributes {
		if mask&(1<<uint(i)) != 0 {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

func containsAll(set map[string]struct{}, attrs []string) bool {
	for _, a := range attrs {
		if _, ok := set[a]; !ok {
			return false
		}
	}
	return true
}

func difference(attrs, minus []string) []string {
	set := make(map[string]struct{}, len(minus))
	for _, a := range minus {
		set[a] = struct{}{}
	}
	var out []string
	for _, a := range attrs {
		if _, ok := set[a]; !ok {
			out = append(out, a)
		}
	}
	return out
}
