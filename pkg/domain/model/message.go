package model

// Text is the same content rendered twice: Plain for notification previews
// and Mrkdwn for the message body. Both must describe the same event.
type Text struct {
	Plain  string
	Mrkdwn string
}

// Link is a URL with display text
type Link struct {
	Text string
	URL  string
}

// ContextBlock is the metadata line under the main text: an event icon and
// one mrkdwn element
type ContextBlock struct {
	ImageURL string
	ImageAlt string
	Mrkdwn   string
}

// Message is a Slack message payload. The block layout is fixed: one mrkdwn
// section with Section, then Context.
type Message struct {
	Username string // empty when no author
	IconURL  string // empty when no author
	Text     string
	Section  string
	Context  ContextBlock

	// ThreadTS posts the message as a reply in that thread
	ThreadTS string
	// ReplyBroadcast also shows a threaded reply in the channel
	ReplyBroadcast bool
}

// UnfurlLinks is always false: link previews are noise in deployment notifications
func (m *Message) UnfurlLinks() bool {
	return false
}
