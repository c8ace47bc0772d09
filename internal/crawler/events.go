package crawler

import "fmt"

// EventKind classifies something that happened during a turn.
type EventKind int

const (
	EventAttack EventKind = iota
	EventKill
	EventLevelUp
	EventPlayerHit
	EventPlayerDefeated
	EventStairsAppeared
	EventDescended
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventAttack:
		return "attack"
	case EventKill:
		return "kill"
	case EventLevelUp:
		return "level_up"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerDefeated:
		return "player_defeated"
	case EventStairsAppeared:
		return "stairs_appeared"
	case EventDescended:
		return "descended"
	default:
		return "unknown"
	}
}

// Event is one entry of a turn's outcome.
type Event struct {
	Kind   EventKind
	Actor  string
	Target string
	Amount int // Damage, experience or levels depending on Kind
	Depth  int
	Boss   bool // Descent onto a boss level
}

// Message renders the event for the message log.
func (e Event) Message() string {
	switch e.Kind {
	case EventAttack:
		return fmt.Sprintf("You deal %d damage to %s.", e.Amount, e.Target)
	case EventKill:
		return fmt.Sprintf("%s is defeated! +%d XP", e.Target, e.Amount)
	case EventLevelUp:
		return fmt.Sprintf("*** LEVEL UP! *** You are now level %d!", e.Amount)
	case EventPlayerHit:
		return fmt.Sprintf("%s deals %d damage to you.", e.Actor, e.Amount)
	case EventPlayerDefeated:
		return fmt.Sprintf("You have been defeated by %s!", e.Actor)
	case EventStairsAppeared:
		return "Level cleared! Stairs down (>) have appeared."
	case EventDescended:
		return levelBanner(e.Depth, e.Boss)
	default:
		return ""
	}
}

// TurnResult is returned by every player action.
type TurnResult struct {
	Taken  bool // A turn was consumed
	Events []Event
}

func (r *TurnResult) add(e Event) {
	r.Events = append(r.Events, e)
}

// Has reports whether the turn produced an event of kind k.
func (r TurnResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Banner is the level transition announcement.
type Banner struct {
	Text string
	Boss bool
}

func levelBanner(depth int, boss bool) string {
	if boss {
		return fmt.Sprintf("BOSS LEVEL %d - Prepare for Battle!", depth)
	}
	return fmt.Sprintf("Dungeon Level %d!", depth)
}
