package taxon

// Best selects exactly one winner from the candidates the registry
// returned for a single name. The tie-break policy, in order:
//
//  1. candidates whose status is "accepted" or missing beat any
//     explicit synonym or other unaccepted status;
//  2. among the rest, a candidate that is itself the accepted record
//     (its own id equals its accepted id) beats a pointer to one;
//  3. otherwise the first candidate in input order wins, which is
//     deterministic because the registry ranks results by match
//     quality and input ordering is stable.
//
// The second return value is false when there are no candidates.
func Best(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}

	pool := preferred(cands, func(c Candidate) bool {
		return c.Status == StatusAccepted || c.Status == ""
	})
	pool = preferred(pool, func(c Candidate) bool {
		return c.RegistryID != 0 && c.RegistryID == c.AcceptedRegistryID
	})

	return pool[0], true
}

// Ambiguous reports whether the candidates for one name point at more
// than one accepted registry record. Such names are resolved
// deterministically by Best, but curators want to know about them.
func Ambiguous(cands []Candidate) bool {
	var seen int64
	for _, c := range cands {
		id := c.AcceptedRegistryID
		if id == 0 {
			id = c.RegistryID
		}
		if id == 0 {
			continue
		}
		if seen == 0 {
			seen = id
			continue
		}
		if id != seen {
			return true
		}
	}
	return false
}

// preferred narrows cands to those satisfying keep, or returns cands
// unchanged when none do.
func preferred(cands []Candidate, keep func(Candidate) bool) []Candidate {
	var res []Candidate
	for _, c := range cands {
		if keep(c) {
			res = append(res, c)
		}
	}
	if len(res) == 0 {
		return cands
	}
	return res
}
