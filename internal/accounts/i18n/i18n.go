// Package i18n holds the user-facing messages of the accounts service and
// picks a locale for each request.
package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

// Key identifies a user-facing message.
type Key string

const (
	IncompleteInformation Key = "incomplete_information"
	UserNameTooShort      Key = "username_too_short"
	InvalidUserName       Key = "invalid_username"
	InvalidEmail          Key = "invalid_email"
	PasswordsMismatch     Key = "passwords_mismatch"
	UserNameExists        Key = "username_exists"
	RegistrationSucceeded Key = "registration_succeeded"
	LoginFailed           Key = "login_failed"
	UserNotFound          Key = "user_not_found"
	InvalidRequestBody    Key = "invalid_request_body"
	PersistenceFailed     Key = "persistence_failed"
	InternalError         Key = "internal_error"
	Unauthorized          Key = "unauthorized"
)

// Supported locales, in preference order for tie breaking.
var (
	English           = language.English
	SimplifiedChinese = language.SimplifiedChinese
)

var messages = map[language.Tag]map[Key]string{
	English: {
		IncompleteInformation: "incomplete information",
		UserNameTooShort:      "username must be at least 3 characters",
		InvalidUserName:       "invalid username",
		InvalidEmail:          "invalid email",
		PasswordsMismatch:     "passwords do not match",
		UserNameExists:        "username already exists",
		RegistrationSucceeded: "registration succeeded",
		LoginFailed:           "login failed",
		UserNotFound:          "user not found",
		InvalidRequestBody:    "invalid request body",
		PersistenceFailed:     "could not save user",
		InternalError:         "internal server error",
		Unauthorized:          "missing or invalid token",
	},
	SimplifiedChinese: {
		IncompleteInformation: "信息不完整",
		UserNameTooShort:      "用户名至少需要3个字符",
		InvalidUserName:       "用户名不合法",
		InvalidEmail:          "请填写正确的邮箱",
		PasswordsMismatch:     "两次输入密码不一致",
		UserNameExists:        "用户名已存在",
		RegistrationSucceeded: "注册成功",
		LoginFailed:           "登陆失败",
		UserNotFound:          "用户不存在",
		InvalidRequestBody:    "请求格式错误",
		PersistenceFailed:     "用户保存失败",
		InternalError:         "服务器内部错误",
		Unauthorized:          "令牌缺失或无效",
	},
}

// Keys lists every message key.
func Keys() []Key {
	return []Key{
		IncompleteInformation, UserNameTooShort, InvalidUserName, InvalidEmail,
		PasswordsMismatch, UserNameExists, RegistrationSucceeded, LoginFailed,
		UserNotFound, InvalidRequestBody, PersistenceFailed, InternalError,
		Unauthorized,
	}
}

// Catalog translates message keys. It is immutable after New and safe for
// concurrent use.
type Catalog struct {
	cat       *catalog.Builder
	matcher   language.Matcher
	supported []language.Tag
	fallback  language.Tag
}

// New builds the catalog. defaultLocale is used when a request names no
// supported language; it must itself resolve to a supported locale.
func New(defaultLocale string) (*Catalog, error) {
	supported := []language.Tag{English, SimplifiedChinese}

	b := catalog.NewBuilder(catalog.Fallback(English))
	for tag, msgs := range messages {
		for key, text := range msgs {
			if err := b.SetString(tag, string(key), text); err != nil {
				return nil, fmt.Errorf("i18n: set %s/%s: %w", tag, key, err)
			}
		}
	}

	c := &Catalog{
		cat:       b,
		matcher:   language.NewMatcher(supported),
		supported: supported,
	}

	tag, err := language.Parse(strings.TrimSpace(defaultLocale))
	if err != nil {
		return nil, fmt.Errorf("i18n: default locale %q: %w", defaultLocale, err)
	}
	fallback, ok := c.match(tag)
	if !ok {
		return nil, fmt.Errorf("i18n: default locale %q is not supported", defaultLocale)
	}
	c.fallback = fallback
	return c, nil
}

// Default returns the fallback locale.
func (c *Catalog) Default() language.Tag { return c.fallback }

// Supported returns the supported locales.
func (c *Catalog) Supported() []language.Tag {
	return append([]language.Tag(nil), c.supported...)
}

func (c *Catalog) match(tags ...language.Tag) (language.Tag, bool) {
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return language.Und, false
	}
	return c.supported[idx], true
}

// Resolve picks the locale for r: the lang query parameter first, then
// Accept-Language, then the default.
func (c *Catalog) Resolve(r *http.Request) language.Tag {
	if r == nil {
		return c.fallback
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			if m, ok := c.match(tag); ok {
				return m
			}
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if m, ok := c.match(tags...); ok {
				return m
			}
		}
	}

	return c.fallback
}

// Message returns the text for key in tag's language.
func (c *Catalog) Message(tag language.Tag, key Key) string {
	return message.NewPrinter(tag, message.Catalog(c.cat)).Sprintf(string(key))
}

// Localize is Message with the locale resolved from r.
func (c *Catalog) Localize(r *http.Request, key Key) string {
	return c.Message(c.Resolve(r), key)
}
