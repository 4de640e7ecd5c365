package sid

// SPUpdater computes one Survey Propagation update pass over a single
// clause: for every enabled edge of the clause, a new survey value derived
// from the other edges' subsurveys, with the variable subproduct cache
// patched in place to match.
type SPUpdater struct {
	fg    *FactorGraph
	cache *SubproductCache
	eps   float64 // ZERO_EPSILON
}

// NewSPUpdater returns an updater bound to fg and cache, using eps as the
// saturation threshold for both (1-survey) and subsurveys.
func NewSPUpdater(fg *FactorGraph, cache *SubproductCache, eps float64) *SPUpdater {
	return &SPUpdater{fg: fg, cache: cache, eps: eps}
}

// Update recomputes the survey of every enabled edge of clause clauseID and
// patches the incident variables' subproducts to match. It returns the
// maximum |Δsurvey| observed across the clause's edges.
func (u *SPUpdater) Update(clauseID int) float64 {
	edges := u.fg.EnabledEdges(clauseID)
	if len(edges) == 0 {
		return 0
	}

	subSurveys := make([]float64, len(edges))
	zeros := 0
	product := 1.0

	for i, eid := range edges {
		e := &u.fg.Edges[eid]
		v := &u.fg.Variables[e.Variable]

		var p, m float64
		if e.Type {
			// Positive edge: m excludes nothing (e isn't in the m
			// product), p excludes e's own contribution to P.
			if v.MZero > 0 {
				m = 0
			} else {
				m = v.M
			}
			switch {
			case v.PZero == 0:
				p = v.P / (1.0 - e.Survey)
			case v.PZero == 1 && 1.0-e.Survey < u.eps:
				p = v.P
			default:
				p = 0
			}
		} else {
			if v.PZero > 0 {
				p = 0
			} else {
				p = v.P
			}
			switch {
			case v.MZero == 0:
				m = v.M / (1.0 - e.Survey)
			case v.MZero == 1 && 1.0-e.Survey < u.eps:
				m = v.M
			default:
				m = 0
			}
		}

		var wn, wt float64
		if e.Type {
			wn = p * (1.0 - m)
			wt = m
		} else {
			wn = m * (1.0 - p)
			wt = p
		}
		subSurvey := wn / (wn + wt)
		subSurveys[i] = subSurvey
		if subSurvey < u.eps {
			zeros++
		} else {
			product *= subSurvey
		}
	}

	maxDelta := 0.0
	for i, eid := range edges {
		e := &u.fg.Edges[eid]

		var newSurvey float64
		switch {
		case zeros == 0:
			newSurvey = product / subSurveys[i]
		case zeros == 1 && subSurveys[i] < u.eps:
			newSurvey = product
		default:
			newSurvey = 0
		}

		oldSurvey := e.Survey
		u.cache.Patch(e.Variable, e.Type, oldSurvey, newSurvey)
		e.Survey = newSurvey

		delta := oldSurvey - newSurvey
		if delta < 0 {
			delta = -delta
		}
		if delta > maxDelta {
			maxDelta = delta
		}
	}
	return maxDelta
}
