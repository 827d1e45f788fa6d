package dispatch

import (
	"courier-dispatch/internal/domain"
)

// pickBest returns the winner among scored candidates. Candidates whose
// distance is within tieBreakKm of the closest one form a band; inside the
// band the lowest load wins, then the shorter distance, then the lower id.
// Outside the band distance alone decides, so a materially closer courier
// always beats a less loaded one.
func pickBest(cands []domain.Candidate, tieBreakKm float64) domain.Candidate {
	nearest := cands[0].DistanceKm
	for _, c := range cands[1:] {
		if c.DistanceKm < nearest {
			nearest = c.DistanceKm
		}
	}

	var (
		best  domain.Candidate
		found bool
	)
	for _, c := range cands {
		if c.DistanceKm > nearest && c.DistanceKm-nearest >= tieBreakKm {
			continue
		}
		if !found || better(c, best) {
			best = c
			found = true
		}
	}
	return best
}

func better(a, b domain.Candidate) bool {
	if a.ActiveOrders != b.ActiveOrders {
		return a.ActiveOrders < b.ActiveOrders
	}
	if a.DistanceKm != b.DistanceKm {
		return a.DistanceKm < b.DistanceKm
	}
	return a.Courier.ID < b.Courier.ID
}

// nextCandidates drops declined couriers. If nobody is left it falls back to
// round-robin over the full online list: the courier after the last one in
// history, or the first one when there is no history.
func nextCandidates(online []domain.Candidate, declined, history domain.IDList) ([]domain.Candidate, bool) {
	out := make([]domain.Candidate, 0, len(online))
	for _, c := range online {
		if !declined.Contains(c.Courier.ID) {
			out = append(out, c)
		}
	}
	if len(out) > 0 || len(online) == 0 {
		return out, false
	}

	last, ok := history.Last()
	if !ok {
		return online[:1], true
	}
	idx := -1
	for i, c := range online {
		if c.Courier.ID == last {
			idx = i
			break
		}
	}
	return []domain.Candidate{online[(idx+1)%len(online)]}, true
}
