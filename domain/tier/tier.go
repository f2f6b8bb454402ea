package tier

// Tier is one of the fixed plan qualities an applicant can be offered,
// ordered best to worst by Rank.
type Tier string

const (
	Day1           Tier = "Day1"
	Day1Plus       Tier = "Day1+"
	Signature      Tier = "Signature"
	DeferredPlus   Tier = "Deferred+"
	GuaranteedPlus Tier = "Guaranteed+"
)

// Outcome is a Tier or the terminal Decline, which sits outside the
// lattice and is worse than every tier.
type Outcome string

const Decline Outcome = "DECLINE"

var ladder = []Tier{Day1, Day1Plus, Signature, DeferredPlus, GuaranteedPlus}

var rank = map[Outcome]int{
	Outcome(Day1):           1,
	Outcome(Day1Plus):       2,
	Outcome(Signature):      3,
	Outcome(DeferredPlus):   4,
	Outcome(GuaranteedPlus): 5,
	Decline:                 6,
}

// All returns every tier, best to worst.
func All() []Tier {
	out := make([]Tier, len(ladder))
	copy(out, ladder)
	return out
}

// Best tier in the full lattice.
func BestTier() Tier { return Day1 }

// Worst tier still inside the lattice (Decline excluded).
func WorstTier() Tier { return GuaranteedPlus }

// Rank returns the badness of an outcome, 1 (best) to 6 (Decline).
// Unknown outcomes rank worst so a corrupt value can never improve a result.
func Rank(o Outcome) int {
	if r, ok := rank[o]; ok {
		return r
	}
	return rank[Decline]
}

// Valid reports whether o names a known tier or Decline.
func Valid(o Outcome) bool {
	_, ok := rank[o]
	return ok
}

// WorseThan reports whether a is strictly worse than b.
func WorseThan(a, b Outcome) bool {
	return Rank(a) > Rank(b)
}

// FilterAtOrWorse keeps the tiers of set that are at or worse than floor.
func FilterAtOrWorse(set []Tier, floor Tier) []Tier {
	min := Rank(Outcome(floor))
	out := make([]Tier, 0, len(set))
	for _, t := range set {
		if Rank(Outcome(t)) >= min {
			out = append(out, t)
		}
	}
	return out
}

// Best returns the least-bad tier present in set.
func Best(set []Tier) (Tier, bool) {
	if len(set) == 0 {
		return "", false
	}
	best := set[0]
	for _, t := range set[1:] {
		if Rank(Outcome(t)) < Rank(Outcome(best)) {
			best = t
		}
	}
	return best, true
}

// Tighten returns the worse of current and candidate. A floor never
// relaxes, and Decline absorbs everything.
func Tighten(current, candidate Outcome) Outcome {
	if Rank(candidate) > Rank(current) {
		return candidate
	}
	return current
}
