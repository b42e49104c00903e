package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	"github.com/aussiebroadwan/accounts/internal/accounts/i18n"
)

// MinUserNameLength is the minimum user name length in characters.
const MinUserNameLength = 3

const (
	maxEmailLength = 254
	maxLocalLength = 64
)

var (
	userNamePattern    = regexp.MustCompile(`^([A-Za-z0-9\-_]|[\x{4e00}-\x{9fa5}])+$`)
	domainLabelPattern = regexp.MustCompile(`^[\p{L}\p{N}]([\p{L}\p{N}-]{0,61}[\p{L}\p{N}])?$`)
	tldPattern         = regexp.MustCompile(`^(\p{L}{2,}|(?i:xn--[a-z0-9-]{2,}))$`)
)

// Error is a rejected field. Key names the message shown to the user.
type Error struct {
	Key i18n.Key
}

func (e *Error) Error() string { return "validate: " + string(e.Key) }

func fail(key i18n.Key) error { return &Error{Key: key} }

// Signup checks a normalized signup form and returns the first failure.
func Signup(in SignupInput) error {
	if in.UserName == "" || in.Email == "" || in.Pass == "" || in.RePass == "" {
		return fail(i18n.IncompleteInformation)
	}
	if err := userName(in.UserName); err != nil {
		return err
	}
	if !IsEmail(in.Email) {
		return fail(i18n.InvalidEmail)
	}
	if in.Pass != in.RePass {
		return fail(i18n.PasswordsMismatch)
	}
	return nil
}

// Signin checks a normalized signin form and returns the first failure.
func Signin(in SigninInput) error {
	if in.UserName == "" || in.Pass == "" {
		return fail(i18n.IncompleteInformation)
	}
	return userName(in.UserName)
}

func userName(name string) error {
	if utf8.RuneCountInString(name) < MinUserNameLength {
		return fail(i18n.UserNameTooShort)
	}
	if !userNamePattern.MatchString(name) {
		return fail(i18n.InvalidUserName)
	}
	return nil
}

// IsEmail reports whether s is a bare address on a fully qualified domain.
// Domain labels are letters, digits and inner hyphens; the TLD is at least
// two letters or an IDNA xn-- label.
func IsEmail(s string) bool {
	if len(s) > maxEmailLength || !govalidator.IsEmail(s) {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	local, domain := s[:at], s[at+1:]
	if local == "" || len(local) > maxLocalLength {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if !domainLabelPattern.MatchString(l) {
			return false
		}
	}
	return tldPattern.MatchString(labels[len(labels)-1])
}
