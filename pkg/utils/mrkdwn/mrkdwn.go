// Package mrkdwn provides helpers for Slack's mrkdwn text format.
//
// See https://api.slack.com/reference/surfaces/formatting
package mrkdwn

import "strings"

func Bold(text string) string {
	return "*" + text + "*"
}

func Emoji(name string) string {
	return ":" + name + ":"
}

// Link renders a URL with display text
func Link(url, text string) string {
	return "<" + url + "|" + text + ">"
}

// Mention renders a user mention by Slack user ID
func Mention(userID string) string {
	return "<@" + userID + ">"
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces the control characters Slack reserves for markup
func Escape(text string) string {
	return escaper.Replace(text)
}
