package pet

import (
	"fmt"
	"log"
)

// GameResult is the outcome of a rock-paper-scissors round for the player.
type GameResult int

const (
	ResultWin GameResult = iota
	ResultDraw
	ResultLose
)

func (r GameResult) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	case ResultLose:
		return "lose"
	default:
		return fmt.Sprintf("GameResult(%d)", int(r))
	}
}

// Hand is a rock-paper-scissors gesture.
type Hand int

const (
	Rock Hand = iota
	Paper
	Scissors
)

func (h Hand) String() string {
	switch h {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("Hand(%d)", int(h))
	}
}

// Emoji returns the hand as an emoji
func (h Hand) Emoji() string {
	switch h {
	case Rock:
		return "✊"
	case Paper:
		return "✋"
	default:
		return "✌️"
	}
}

// RandomHand picks the pet's gesture.
func RandomHand() Hand {
	h := Hand(RandFloat64() * 3)
	if h > Scissors {
		h = Scissors
	}
	return h
}

// Judge scores the player's hand against the pet's.
func Judge(player, pet Hand) GameResult {
	switch {
	case player == pet:
		return ResultDraw
	case (player+1)%3 == pet:
		return ResultLose
	default:
		return ResultWin
	}
}

// GameReward describes what a round of the mini-game did to the pet.
type GameReward struct {
	Result     GameResult
	ExpGained  int
	EnergyCost int
	LeveledUp  bool
	NewLevel   int
}

// gameTable returns exp reward, energy cost and the pet's reaction for a result.
func gameTable(r GameResult) (exp, cost int, reaction State) {
	switch r {
	case ResultWin:
		return ExpWin, EnergyCostWin, StateHappy
	case ResultDraw:
		return ExpDraw, EnergyCostDraw, StateSurprised
	default:
		return ExpLose, EnergyCostLose, StateAngry
	}
}

// PlayMiniGame settles one round: it spends energy, grants experience and
// bumps the round counters. There is no energy precondition; health simply
// bottoms out at zero.
func (e *Engine) PlayMiniGame(result GameResult) GameReward {
	e.mu.Lock()
	defer e.mu.Unlock()

	exp, cost, reaction := gameTable(result)

	e.stats.Health = clampStat(e.stats.Health - cost)
	if !e.stats.Asleep() {
		e.stats.State = reaction
	}
	e.commit()

	leveledUp := e.addExp(exp)

	e.stats.Games.Total++
	switch result {
	case ResultWin:
		e.stats.Games.Wins++
	case ResultDraw:
		e.stats.Games.Draws++
	default:
		e.stats.Games.Loses++
	}
	e.commit()

	log.Printf("Mini-game %s: +%d exp, -%d health (level %d)", result, exp, cost, e.stats.Level)
	return GameReward{
		Result:     result,
		ExpGained:  exp,
		EnergyCost: cost,
		LeveledUp:  leveledUp,
		NewLevel:   e.stats.Level,
	}
}
