package usecase

import (
	"net/mail"
	"regexp"
	"time"
)

const (
	maxUsernameLen = 150
	maxEmailLen    = 254
	maxNameLen     = 256
	maxSlugLen     = 50

	minScore = 1
	maxScore = 10
)

var (
	// Unicode letters and digits are valid username characters, matching the
	// wider word-character class rather than ASCII-only \w.
	usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

func validateUsername(v *ValidationError, username string) {
	if username == "me" {
		v.Add("username", `using "me" as a username is forbidden`)
		return
	}
	if username == "" || len(username) > maxUsernameLen {
		v.Add("username", "must be between 1 and 150 characters")
		return
	}
	if !usernamePattern.MatchString(username) {
		v.Add("username", "must contain only letters, digits and .@+-_ characters")
	}
}

func validateEmail(v *ValidationError, email string) {
	if email == "" || len(email) > maxEmailLen {
		v.Add("email", "must be between 1 and 254 characters")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		v.Add("email", "must be a valid email address")
	}
}

func validateSlug(v *ValidationError, slug string) {
	if slug == "" || len(slug) > maxSlugLen {
		v.Add("slug", "must be between 1 and 50 characters")
		return
	}
	if !slugPattern.MatchString(slug) {
		v.Add("slug", "must contain only letters, digits, hyphens and underscores")
	}
}

func validateTaxonomyName(v *ValidationError, name string) {
	if name == "" || len(name) > maxNameLen {
		v.Add("name", "must be between 1 and 256 characters")
	}
}

func validateYear(v *ValidationError, year int) {
	if year > time.Now().Year() {
		v.Add("year", "must not be in the future")
	}
}

func validateScore(v *ValidationError, score int) {
	if score < minScore || score > maxScore {
		v.Add("score", "must be an integer between 1 and 10")
	}
}
