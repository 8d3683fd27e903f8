package normalform

import (
	"fmt"
	"sort"
	"strings"
)

// Violation pins a dependency to the lowest normal form it breaks, so a
// partial dependency is reported once as a 2NF violation rather than again
// at 3NF and BCNF.
type Violation struct {
	Form       Form   `json:"form"`
	Dependency string `json:"dependency"`
	Reason     string `json:"reason"`
}

// Report is the outcome of Analyze.
type Report struct {
	Relation      string      `json:"relation"`
	CandidateKeys [][]string  `json:"candidate_keys"`
	Prime         []string    `json:"prime_attributes"`
	HighestForm   Form        `json:"highest_form"`
	Violations    []Violation `json:"violations,omitempty"`
}

// Analyze diagnoses the declared dependencies of a relation and returns the
// highest normal form the relation satisfies together with every violation
// found above it.
func Analyze(rel Relation, deps Dependencies) Report {
	report := Report{Relation: rel.Name}

	keys := CandidateKeys(rel, deps.FDs)
	report.CandidateKeys = keys
	prime := primeAttributes(keys)
	for a := range prime {
		report.Prime = append(report.Prime, a)
	}
	sort.Strings(report.Prime)

	for _, col := range rel.NonAtomic {
		report.Violations = append(report.Violations, Violation{
			Form:       FirstNF,
			Dependency: col,
			Reason:     fmt.Sprintf("column %q holds a repeating group instead of atomic values", col),
		})
	}

	for _, fd := range deps.FDs {
		if v, ok := classifyFD(rel, fd, keys, prime, deps.FDs); ok {
			report.Violations = append(report.Violations, v)
		}
	}

	for _, mvd := range deps.MVDs {
		if trivialMVD(rel, mvd) {
			continue
		}
		if !IsSuperkey(rel, mvd.From, deps.FDs) {
			report.Violations = append(report.Violations, Violation{
				Form:       FourthNF,
				Dependency: mvd.String(),
				Reason: fmt.Sprintf("non-trivial multivalued dependency whose determinant {%s} is not a superkey",
					strings.Join(mvd.From, ", ")),
			})
		}
	}

	if deps.Join != nil {
		if v, ok := classifyJD(rel, *deps.Join, deps.FDs); ok {
			report.Violations = append(report.Violations, v)
		}
	}

	report.HighestForm = highestSatisfied(report.Violations)
	return report
}

// classifyFD returns the violation an FD causes, if any. Each violating FD
// is classified once, at the lowest form it breaks:
//
//   - determinant a proper subset of a candidate key, non-prime dependents: 2NF
//   - determinant not a superkey, non-prime dependents: 3NF (transitive)
//   - determinant not a superkey, only prime dependents: BCNF
func classifyFD(rel Relation, fd FD, keys [][]string, prime map[string]bool, fds []FD) (Violation, bool) {
	rhs := difference(fd.To, fd.From)
	if len(rhs) == 0 {
		return Violation{}, false // trivial
	}
	if IsSuperkey(rel, fd.From, fds) {
		return Violation{}, false
	}

	var nonPrime []string
	for _, a := range rhs {
		if !prime[a] {
			nonPrime = append(nonPrime, a)
		}
	}

	if len(nonPrime) == 0 {
		return Violation{
			Form:       BoyceCoddNF,
			Dependency: fd.String(),
			Reason: fmt.Sprintf("determinant {%s} is not a superkey (its dependents are all prime, so 3NF still holds)",
				strings.Join(fd.From, ", ")),
		}, true
	}

	if properSubsetOfAnyKey(fd.From, keys) {
		return Violation{
			Form:       SecondNF,
			Dependency: fd.String(),
			Reason: fmt.Sprintf("partial dependency: non-prime {%s} depend on part of a candidate key",
				strings.Join(nonPrime, ", ")),
		}, true
	}

	return Violation{
		Form:       ThirdNF,
		Dependency: fd.String(),
		Reason: fmt.Sprintf("transitive dependency: non-prime {%s} determined by non-superkey {%s}",
			strings.Join(nonPrime, ", "), strings.Join(fd.From, ", ")),
	}, true
}

// classifyJD flags a join dependency that is not implied by the candidate
// keys. The sufficient condition used here: a JD is implied when every
// component is a superkey; trivial JDs (a component covering the whole
// heading) always hold.
func classifyJD(rel Relation, jd JoinDependency, fds []FD) (Violation, bool) {
	for _, comp := range jd.Components {
		if len(difference(rel.Attributes, comp)) == 0 {
			return Violation{}, false // trivial
		}
	}
	for _, comp := range jd.Components {
		if !IsSuperkey(rel, comp, fds) {
			return Violation{
				Form:       FifthNF,
				Dependency: jd.String(),
				Reason: fmt.Sprintf("join dependency component (%s) is not a superkey, so the dependency is not implied by the keys",
					strings.Join(comp, ", ")),
			}, true
		}
	}
	return Violation{}, false
}

func trivialMVD(rel Relation, mvd MVD) bool {
	if len(difference(mvd.To, mvd.From)) == 0 {
		return true
	}
	union := append(append([]string{}, mvd.From...), mvd.To...)
	return len(difference(rel.Attributes, union)) == 0
}

func primeAttributes(keys [][]string) map[string]bool {
	prime := make(map[string]bool)
	for _, key := range keys {
		for _, a := range key {
			prime[a] = true
		}
	}
	return prime
}

func properSubsetOfAnyKey(attrs []string, keys [][]string) bool {
	for _, key := range keys {
		if len(attrs) >= len(key) {
			continue
		}
		set := make(map[string]struct{}, len(key))
		for _, a := range key {
			set[a] = struct{}{}
		}
		if containsAll(set, attrs) {
			return true
		}
	}
	return false
}

func highestSatisfied(violations []Violation) Form {
	lowest := FifthNF + 1
	for _, v := range violations {
		if v.Form < lowest {
			lowest = v.Form
		}
	}
	if lowest > FifthNF {
		return FifthNF
	}
	return lowest - 1
}
