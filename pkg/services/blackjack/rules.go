package blackjack

import (
	"strconv"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
)

const (
	// BlackjackTotal is the target hand total
	BlackjackTotal = 21

	// DealerStandTotal is the total at which the dealer stops drawing.
	// The dealer stands on any 17, soft or hard.
	DealerStandTotal = 17
)

func CardValue(card *entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 11
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

func IsAce(card *entities.Card) bool {
	return card.Rank == entities.Ace
}

// BestScore computes the best blackjack total for a hand. Every ace
// starts at 11 and is downgraded to 1 one at a time, only as many as
// needed to bring the total back to 21 or below. The result may still
// exceed 21 once every ace is counted as 1.
func BestScore(cards []*entities.Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += CardValue(card)
		if IsAce(card) {
			aces++
		}
	}

	for score > BlackjackTotal && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

// IsBlackjack checks for a natural: exactly two cards totalling 21
func IsBlackjack(cards []*entities.Card) bool {
	return len(cards) == 2 && BestScore(cards) == BlackjackTotal
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []*entities.Card) bool {
	return BestScore(cards) > BlackjackTotal
}

// DealerShouldHit reports whether the dealer must draw another card.
// The dealer hits on 16 and below and stands on 17 and above.
func DealerShouldHit(dealerCards []*entities.Card) bool {
	return BestScore(dealerCards) < DealerStandTotal
}

// DecideOutcome adjudicates two finished hands:
// a busted player always loses, a busted dealer loses to any standing
// player, otherwise the higher total wins and equal totals push.
func DecideOutcome(playerCards, dealerCards []*entities.Card) entities.Outcome {
	playerScore := BestScore(playerCards)
	dealerScore := BestScore(dealerCards)

	switch {
	case playerScore > BlackjackTotal:
		return entities.OutcomeDealerWin
	case dealerScore > BlackjackTotal:
		return entities.OutcomePlayerWin
	case playerScore > dealerScore:
		return entities.OutcomePlayerWin
	case playerScore < dealerScore:
		return entities.OutcomeDealerWin
	default:
		return entities.OutcomePush
	}
}
