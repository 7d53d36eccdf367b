package contact

// OutboundMessage is one fully rendered email ready for transport. Exactly
// two are derived from a Submission: the client confirmation and the
// provider notification.
type OutboundMessage struct {
	To          string
	FromName    string
	FromAddress string
	ReplyTo     string
	Subject     string
	HTML        string
}
