package entity

// GameConfig holds the marks chosen once per game.
type GameConfig struct {
	Human    Mark
	Computer Mark
}

func NewGameConfig(human Mark) GameConfig {
	return GameConfig{
		Human:    human,
		Computer: human.Opponent(),
	}
}

// IsHuman reports whether mark belongs to the human player.
func (that GameConfig) IsHuman(mark Mark) bool {
	return that.Human == mark
}

type Outcome int

const (
	InProgress Outcome = iota
	HumanWin
	ComputerWin
	Draw
)

func (that Outcome) String() string {
	switch that {
	case HumanWin:
		return "human_win"
	case ComputerWin:
		return "computer_win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (that Outcome) IsFinished() bool {
	return that != InProgress
}

// Message is the text shown to the human when the game ends.
func (that Outcome) Message() string {
	switch that {
	case HumanWin:
		return "You won!"
	case ComputerWin:
		return "You lost!"
	case Draw:
		return "Game over, no more space left!"
	default:
		return ""
	}
}
