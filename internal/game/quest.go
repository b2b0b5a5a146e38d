package game

// ConditionFunc is a declarative quest predicate over simulation state.
type ConditionFunc func(s *Sim) bool

// Quest is a one-time achievement with a cash reward. Completion is
// monotonic: once completed the condition is never evaluated again.
type Quest struct {
	ID                  string
	Title               string
	Description         string
	Condition           ConditionFunc
	RewardCash          float64
	Completed           bool
	HiddenUntilComplete bool
}

// Check evaluates the quest against the simulation, awarding the reward
// on first completion. Re-checking a completed quest is a no-op.
func (q *Quest) Check(s *Sim) bool {
	if q.Completed || !q.Condition(s) {
		return false
	}
	q.Completed = true
	if q.RewardCash > 0 && s.Player != nil {
		s.Player.Cash += q.RewardCash
	}
	return true
}

// QuestState is the persisted shape of one quest.
type QuestState struct {
	ID        string `json:"id"`
	Completed bool   `json:"completed"`
}

// QuestLog tracks the ordered quest set.
type QuestLog struct {
	quests []*Quest
}

func NewQuestLog(quests []*Quest) *QuestLog {
	return &QuestLog{quests: quests}
}

// DefaultQuests builds the stock quest set.
func DefaultQuests() []*Quest {
	return []*Quest{
		{ID: "open_bank", Title: "Bank Beginnings", Description: "Open your first bank account.", RewardCash: 25,
			Condition: func(s *Sim) bool { return s.Player != nil && s.Player.BankAccount != nil }},
		{ID: "get_job", Title: "First Paycheck", Description: "Obtain your first job.", RewardCash: 50,
			Condition: func(s *Sim) bool { return s.Player != nil && s.Player.Employed() }},
		{ID: "buy_vehicle", Title: "Wheels", Description: "Acquire a vehicle asset.", RewardCash: 75,
			Condition: func(s *Sim) bool { return s.Player != nil && s.Player.HasAsset(AssetCar) }},
		{ID: "buy_home", Title: "Home Owner", Description: "Purchase a home asset.", RewardCash: 100,
			Condition: func(s *Sim) bool { return s.Player != nil && s.Player.HasAsset(AssetHouse) }},
		{ID: "networth_100k", Title: "Six Figures", Description: "Reach $100,000 net worth.", RewardCash: 500,
			Condition: func(s *Sim) bool { return s.Player != nil && s.NetWorth() >= 100000 }},
		{ID: "meet_mentor", Title: "Meet a Mentor", Description: "Talk to an in-world mentor.", RewardCash: 40,
			Condition: func(s *Sim) bool { return s.MetMentor }},
	}
}

// CheckAll evaluates every incomplete quest and returns those newly
// completed by this call, rewards already credited.
func (l *QuestLog) CheckAll(s *Sim) []*Quest {
	var completed []*Quest
	for _, q := range l.quests {
		if q.Check(s) {
			completed = append(completed, q)
		}
	}
	return completed
}

// Active returns quests neither completed nor hidden.
func (l *QuestLog) Active() []*Quest {
	var out []*Quest
	for _, q := range l.quests {
		if !q.Completed && !q.HiddenUntilComplete {
			out = append(out, q)
		}
	}
	return out
}

// Completed returns all completed quests.
func (l *QuestLog) Completed() []*Quest {
	var out []*Quest
	for _, q := range l.quests {
		if q.Completed {
			out = append(out, q)
		}
	}
	return out
}

// CompleteByID force-completes a quest, crediting its reward once.
func (l *QuestLog) CompleteByID(s *Sim, id string) *Quest {
	for _, q := range l.quests {
		if q.ID == id && !q.Completed {
			q.Completed = true
			if q.RewardCash > 0 && s.Player != nil {
				s.Player.Cash += q.RewardCash
			}
			return q
		}
	}
	return nil
}

// Serialize captures quest completion as a list of {id, completed} pairs.
func (l *QuestLog) Serialize() []QuestState {
	out := make([]QuestState, 0, len(l.quests))
	for _, q := range l.quests {
		out = append(out, QuestState{ID: q.ID, Completed: q.Completed})
	}
	return out
}

// Restore merges saved completion state by id. Quests absent from the
// saved data keep their default incomplete state; unknown saved ids are
// ignored.
func (l *QuestLog) Restore(states []QuestState) {
	byID := make(map[string]bool, len(states))
	for _, st := range states {
		byID[st.ID] = st.Completed
	}
	for _, q := range l.quests {
		if completed, ok := byID[q.ID]; ok {
			q.Completed = completed
		}
	}
}
