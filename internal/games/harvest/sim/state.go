package sim

// evaluateState runs the session state machine over this tick's events.
//
//	Ready    --Start-->            Playing
//	Playing  --PlayerHit-->        GameOver (caught)
//	Playing  --field cleared-->    GameOver (cleared)
//	GameOver --Start-->            Ready
func (s *Sim) evaluateState(in Input) {
	switch s.state {
	case StateReady:
		if in.Start {
			s.enterPlaying()
		}
	case StatePlaying:
		switch {
		case s.events.Has(EventPlayerHit):
			s.enterGameOver(OutcomeCaught)
		case s.field.HarvestedCount() == s.field.Total():
			s.enterGameOver(OutcomeCleared)
		}
	case StateGameOver:
		if in.Start {
			s.enterReady()
		}
	}
}

func (s *Sim) transition(to State, outcome Outcome) {
	from := s.state
	s.state = to
	s.emit(Event{Kind: EventStateChanged, From: from, To: to, Outcome: outcome})
}

// enterPlaying starts a fresh session: new field, combine, turret and
// spawner, no leftover entities.
func (s *Sim) enterPlaying() {
	s.world.Clear()
	s.field = s.buildField()
	s.combine = newCombine(GridPos{X: s.field.Width() / 2, Y: s.field.Height() / 2}, s.cfg.stepPeriod())
	s.combine.handle = s.world.Spawn(Entity{Kind: KindCombine, Pos: s.combine.WorldPos()})
	s.resetTurret()
	s.spawn.Reset()
	s.score = 0
	s.kills = 0
	s.sessionTicks = 0
	s.outcome = OutcomeNone
	s.transition(StatePlaying, OutcomeNone)
}

// enterGameOver freezes the session. Entities stay in place for display
// until the restart.
func (s *Sim) enterGameOver(outcome Outcome) {
	s.outcome = outcome
	s.transition(StateGameOver, outcome)
}

// enterReady tears down every session entity.
func (s *Sim) enterReady() {
	s.world.Clear()
	s.combine = nil
	s.resetTurret()
	s.outcome = OutcomeNone
	s.transition(StateReady, OutcomeNone)
}
