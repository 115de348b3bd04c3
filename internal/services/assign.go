package services

import (
	"math/rand"

	"github.com/giftflow/giftflow-backend/internal/models"
)

// assignReceivers computes a random derangement over ids: every id gives
// to some other id, every id receives exactly once, and nobody is paired
// with themselves.
//
// It shuffles a copy of ids and accepts the first order with no fixed
// point, retrying up to maxAttempts times. A derangement always exists
// for two or more ids, so exhausting the bound means the shuffles were
// spectacularly unlucky; the caller treats that as a server error rather
// than degrading to a self-match.
func assignReceivers(ids []string, maxAttempts int) ([]models.Pair, error) {
	if len(ids) < 2 {
		return nil, ErrInsufficientParticipants
	}

	receivers := make([]string, len(ids))
	copy(receivers, ids)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		rand.Shuffle(len(receivers), func(i, j int) {
			receivers[i], receivers[j] = receivers[j], receivers[i]
		})
		if hasFixedPoint(ids, receivers) {
			continue
		}

		pairs := make([]models.Pair, len(ids))
		for i, giver := range ids {
			pairs[i] = models.Pair{GiverID: giver, ReceiverID: receivers[i]}
		}
		return pairs, nil
	}

	return nil, ErrDrawComputationFailed
}

func hasFixedPoint(givers, receivers []string) bool {
	for i := range givers {
		if givers[i] == receivers[i] {
			return true
		}
	}
	return false
}
