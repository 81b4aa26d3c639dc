package whatsapp

import (
	"net/url"
	"strings"
)

// BuildLink builds a wa.me link that opens a chat with the given phone
// number and a pre-filled message. Non-digit characters are stripped
// from the phone number, as wa.me only accepts digits.
func BuildLink(phone, message string) string {
	digits := onlyDigits(phone)
	if digits == "" {
		return ""
	}

	link := "https://wa.me/" + digits
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}

	return link
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
