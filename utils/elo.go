package utils

import "math"

// ExpectedScore returns the probability that a player rated ratingA outscores
// a player rated ratingB.
// Formula: 1 / (1 + 10 ^ ((Rb - Ra) / 400))
func ExpectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

// ComputeDeltas calculates rating changes for a winner-takes-all match.
// The winner is treated as having played an independent 1v1 against every
// loser; losers are never compared against each other. The winner's delta is
// the sum over all pairings while each loser's delta reflects only its own
// pairing, so loserDeltas is aligned by position with loserRatings.
//
// No rounding or clamping happens here; presentation-time rounding is the
// caller's business. Zero losers yields a zero winner delta and an empty
// slice.
func ComputeDeltas(winnerRating float64, loserRatings []float64, kFactor float64) (float64, []float64) {
	winnerDelta := 0.0
	loserDeltas := make([]float64, 0, len(loserRatings))

	for _, loserRating := range loserRatings {
		// Winner actually won (score 1): delta = K * (1 - expected)
		expWin := ExpectedScore(winnerRating, loserRating)
		winnerDelta += kFactor * (1.0 - expWin)

		// Loser actually lost (score 0): delta = K * (0 - expected)
		expLoss := ExpectedScore(loserRating, winnerRating)
		loserDeltas = append(loserDeltas, kFactor*(0.0-expLoss))
	}

	return winnerDelta, loserDeltas
}
