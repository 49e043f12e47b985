package services

// RedemptionService consumes a purchased ticket's validity exactly once, at
// gate check-in. Atomicity lives in the repository's conditional update, so
// the service holds no locks: redemption requests for one ticket arrive from
// unrelated scanners with no shared session.
type RedemptionService struct {
	ticketRepo TicketRedeemer
}

// TicketRedeemer interface for the one-way used transition
type TicketRedeemer interface {
	Redeem(id int) error
}

// NewRedemptionService creates a new redemption service
func NewRedemptionService(ticketRepo TicketRedeemer) *RedemptionService {
	return &RedemptionService{ticketRepo: ticketRepo}
}

// Redeem marks the ticket as used. When no unused ticket matches the id the
// caller gets models.ErrTicketUnavailable, whether the id is unknown or the
// ticket was already used.
func (s *RedemptionService) Redeem(ticketID int) error {
	return s.ticketRepo.Redeem(ticketID)
}
