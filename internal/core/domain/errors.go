package domain

// Failure is a categorical error from the closed set of engine failure
// kinds. Codes follow the original contract numbering so API clients can
// branch on stable numbers. Failures are compared with errors.Is against
// the package-level sentinels.
type Failure struct {
	Code   uint32
	Reason string
}

func (f *Failure) Error() string { return f.Reason }

var (
	ErrEmptyField     = &Failure{101, "title, description and link must not be empty"}
	ErrInvalidGoal    = &Failure{102, "funding goal must be positive"}
	ErrStartInPast    = &Failure{103, "campaign start is in the past"}
	ErrInvalidWindow  = &Failure{104, "campaign window is invalid"}
	ErrNotFound       = &Failure{105, "campaign not found"}
	ErrAlreadyStarted = &Failure{106, "campaign has already started"}
	ErrNotOwner       = &Failure{107, "caller does not own the campaign"}
	ErrNotStarted     = &Failure{108, "campaign has not started"}
	ErrCampaignEnded  = &Failure{109, "campaign has ended"}
	ErrZeroAmount     = &Failure{110, "amount must be positive"}
	ErrTransferFailed = &Failure{111, "custody transfer failed"}
	ErrNoInvestment   = &Failure{112, "caller has no investment in the campaign"}
	ErrExceedsPledged = &Failure{113, "amount exceeds the outstanding pledge"}
	ErrStillActive    = &Failure{114, "campaign is still active"}
	ErrGoalReached    = &Failure{115, "campaign reached its goal"}
	ErrAlreadyClaimed = &Failure{116, "campaign funds were already claimed"}
	ErrGoalNotReached = &Failure{117, "campaign goal was not reached"}
)
