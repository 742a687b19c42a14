package api

import "sort"

// GroupMatchesByRound arranges already-computed matches into rounds for
// display. Matches are grouped on their Round field and ordered by match
// number inside each round. No seeding or bracket logic happens here.
func GroupMatchesByRound(matches []Match) []Round {
	byRound := make(map[int][]Match)
	for _, m := range matches {
		byRound[m.Round] = append(byRound[m.Round], m)
	}

	rounds := make([]Round, 0, len(byRound))
	for number, ms := range byRound {
		sort.Slice(ms, func(i, j int) bool {
			return ms[i].MatchNumber < ms[j].MatchNumber
		})
		rounds = append(rounds, Round{Number: number, Matches: ms})
	}
	sort.Slice(rounds, func(i, j int) bool {
		return rounds[i].Number < rounds[j].Number
	})
	return rounds
}
