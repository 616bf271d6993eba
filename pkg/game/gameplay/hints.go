package gameplay

// Hints are only shown for the first few visits.
const maxHints = 2

// showSelectHint explains the carousel controls.
func (s *Session) showSelectHint() {
	if s.selectHints >= maxHints {
		return
	}
	s.selectHints++
	logMessage(s.Game, "GT{SELECT_HINT}")
}

// showPilotHint explains the flight controls after the first landings.
func (s *Session) showPilotHint() {
	if s.landings > maxHints {
		return
	}
	logMessage(s.Game, "GT{PILOT_HINT}")
}
