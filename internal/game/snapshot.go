package game

import "errors"

// SnapshotVersion tags the persisted format.
const SnapshotVersion = 1

var ErrBadSnapshot = errors.New("snapshot is missing required state or has an unsupported version")

// Snapshot is the logical save-game: the full player graph plus clock,
// quest, and notification state. Persistence layers serialize it however
// they like; the shape here is the contract.
type Snapshot struct {
	Version            int             `json:"version"`
	Player             *Player         `json:"player"`
	CurrentMonth       int             `json:"current_month"`
	CurrentYear        int             `json:"current_year"`
	GameOver           bool            `json:"game_over"`
	MetMentor          bool            `json:"met_mentor"`
	Quests             []QuestState    `json:"quests"`
	QuestNotifications []string        `json:"quest_notifications,omitempty"`
	DeclinedOffers     []LifeEventKind `json:"declined_offers,omitempty"`
}

// Snapshot captures the current state.
func (s *Sim) Snapshot() Snapshot {
	notifications := s.Notifications
	if len(notifications) > maxNotifications {
		notifications = notifications[len(notifications)-maxNotifications:]
	}
	var declined []LifeEventKind
	for kind, ok := range s.declined {
		if ok {
			declined = append(declined, kind)
		}
	}
	return Snapshot{
		Version:            SnapshotVersion,
		Player:             s.Player,
		CurrentMonth:       s.Month,
		CurrentYear:        s.Year,
		GameOver:           s.GameOver,
		MetMentor:          s.MetMentor,
		Quests:             s.quests.Serialize(),
		QuestNotifications: notifications,
		DeclinedOffers:     declined,
	}
}

// Restore replaces the simulation state with a snapshot. An invalid
// snapshot is rejected up front and leaves the current state untouched.
func (s *Sim) Restore(snap Snapshot) error {
	if snap.Version != SnapshotVersion || snap.Player == nil {
		return ErrBadSnapshot
	}
	s.Player = snap.Player
	s.Month = snap.CurrentMonth
	s.Year = snap.CurrentYear
	s.GameOver = snap.GameOver
	s.MetMentor = snap.MetMentor
	s.quests.Restore(snap.Quests)
	s.Notifications = snap.QuestNotifications
	s.pending = nil
	s.declined = make(map[LifeEventKind]bool)
	for _, kind := range snap.DeclinedOffers {
		s.declined[kind] = true
	}
	return nil
}
