package entity

// SettlementScope selects the purchases a settlement covers.
// A nil EventID means every event.
type SettlementScope struct {
	EventID   *uint64
	EventName string
	OwnerID   *uint64 // excluded from the participant pool when set
}

// GlobalScope covers purchases across all events
func GlobalScope() SettlementScope {
	return SettlementScope{}
}

// EventScope covers the purchases of a single event
func EventScope(event *Event) SettlementScope {
	id := event.ID
	return SettlementScope{
		EventID:   &id,
		EventName: event.Name,
		OwnerID:   event.OwnerID,
	}
}

// IsGlobal reports whether the scope spans all events
func (s SettlementScope) IsGlobal() bool {
	return s.EventID == nil
}

// ParticipantBalance is one row of a settlement report.
// A positive balance means the participant overpaid and is owed money back.
type ParticipantBalance struct {
	UserID           uint64
	Username         string
	ContributedCents int64
	FairShareCents   int64
	BalanceCents     int64
}

// SettlementReport is the fair-split result for a scope
type SettlementReport struct {
	Scope            SettlementScope
	TotalCents       int64
	FairShareCents   int64
	ParticipantCount int
	Participants     []ParticipantBalance // ordered by username
	// RemainderCents is TotalCents minus FairShareCents times ParticipantCount.
	// The participant balances sum to exactly this value.
	RemainderCents int64
	Transfers      []Transfer // suggested payments, largest first
}

// Transfer is a suggested payment that moves a debtor towards zero balance
type Transfer struct {
	FromUserID   uint64
	FromUsername string
	ToUserID     uint64
	ToUsername   string
	AmountCents  int64
}

// Total returns the total as a string with 2 decimal places
func (r *SettlementReport) Total() string {
	return AmountInCentsToString(r.TotalCents)
}

// FairShare returns the fair share as a string with 2 decimal places
func (r *SettlementReport) FairShare() string {
	return AmountInCentsToString(r.FairShareCents)
}
