package quiz

// Summary holds the data displayed when a session ends.
type Summary struct {
	SessionID      string
	TotalQuestions int
	Correct        int
	Incorrect      int
	Accuracy       float64
	Finished       bool
}

// BuildSummary creates a Summary from a snapshot.
func BuildSummary(id string, snap Snapshot) Summary {
	total := 0
	if snap.State != Uninitialized {
		total = snap.Context.QuestionCount()
	}
	return Summary{
		SessionID:      id,
		TotalQuestions: total,
		Correct:        snap.Context.CorrectCount,
		Incorrect:      snap.Context.IncorrectCount,
		Accuracy:       snap.Context.Accuracy(),
		Finished:       snap.State.IsFinal(),
	}
}

// Summary returns the scoring summary of the snapshot without a session ID.
func (s Snapshot) Summary() Summary {
	return BuildSummary("", s)
}

// Summary returns the scoring summary of the current state.
func (s *Session) Summary() Summary {
	return BuildSummary(s.id, s.Current())
}
