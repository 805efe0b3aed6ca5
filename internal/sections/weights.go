package sections

// WeightVector holds the non-negative weight of each section. Weights sum to 1.
type WeightVector map[Label]float64

// base weights before redistribution.
var baseWeights = WeightVector{
	Skills:     0.10,
	Experience: 0.50,
	Projects:   0.30,
	Other:      0.10,
}

// BaseWeights returns a copy of the base weights.
func BaseWeights() WeightVector {
	w := make(WeightVector, len(baseWeights))
	for l, v := range baseWeights {
		w[l] = v
	}
	return w
}

// Weights returns the section weights for set. When exactly one of experience
// and projects is empty, its weight moves to the other one. Skills and other
// keep their base weight regardless of content.
func Weights(set Set) WeightVector {
	w := BaseWeights()

	hasExperience := !set.Empty(Experience)
	hasProjects := !set.Empty(Projects)

	switch {
	case !hasExperience && hasProjects:
		w[Projects] += w[Experience]
		w[Experience] = 0
	case hasExperience && !hasProjects:
		w[Experience] += w[Projects]
		w[Projects] = 0
	}
	return w
}

// Sum returns the total of all weights.
func (w WeightVector) Sum() float64 {
	var total float64
	for _, l := range Labels {
		total += w[l]
	}
	return total
}
