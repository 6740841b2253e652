package forms

import (
	"strings"

	"github.com/kleyson/appz-budget/internal/models"
)

const minPasswordLen = 8

type PasswordField int

const (
	PasswordCurrent PasswordField = iota
	PasswordNew
	PasswordConfirm
)

func (f PasswordField) Next() PasswordField {
	switch f {
	case PasswordCurrent:
		return PasswordNew
	case PasswordNew:
		return PasswordConfirm
	default:
		return PasswordCurrent
	}
}

func (f PasswordField) Prev() PasswordField {
	switch f {
	case PasswordConfirm:
		return PasswordNew
	case PasswordNew:
		return PasswordCurrent
	default:
		return PasswordConfirm
	}
}

type PasswordDraft struct {
	Focus   PasswordField
	Current string
	New     string
	Confirm string
}

func (d *PasswordDraft) NextField() { d.Focus = d.Focus.Next() }
func (d *PasswordDraft) PrevField() { d.Focus = d.Focus.Prev() }

func (d *PasswordDraft) field() *string {
	switch d.Focus {
	case PasswordNew:
		return &d.New
	case PasswordConfirm:
		return &d.Confirm
	default:
		return &d.Current
	}
}

func (d *PasswordDraft) Input(r rune) {
	f := d.field()
	*f = appendText(*f, r)
}

func (d *PasswordDraft) Backspace() {
	f := d.field()
	*f = backspace(*f)
}

func (d *PasswordDraft) Validate() []string {
	var msgs []string
	if d.Current == "" {
		msgs = append(msgs, "Current password is required")
	}
	if d.New == "" {
		msgs = append(msgs, "New password is required")
	} else if len([]rune(d.New)) < minPasswordLen {
		msgs = append(msgs, "New password must be at least 8 characters")
	}
	if d.New != d.Confirm {
		msgs = append(msgs, "Passwords do not match")
	}
	return msgs
}

func (d *PasswordDraft) ToRequest() (models.PasswordChange, error) {
	if err := validationErr(d.Validate()); err != nil {
		return models.PasswordChange{}, err
	}
	return models.PasswordChange{CurrentPassword: d.Current, NewPassword: d.New}, nil
}

type LoginField int

const (
	LoginEmail LoginField = iota
	LoginPassword
)

func (f LoginField) Next() LoginField {
	if f == LoginEmail {
		return LoginPassword
	}
	return LoginEmail
}

func (f LoginField) Prev() LoginField { return f.Next() }

type LoginDraft struct {
	Focus    LoginField
	Email    string
	Password string
}

func (d *LoginDraft) NextField() { d.Focus = d.Focus.Next() }
func (d *LoginDraft) PrevField() { d.Focus = d.Focus.Prev() }

// IsEmpty reports whether nothing has been typed yet.
func (d *LoginDraft) IsEmpty() bool { return d.Email == "" && d.Password == "" }

func (d *LoginDraft) Input(r rune) {
	if d.Focus == LoginEmail {
		d.Email = appendText(d.Email, r)
		return
	}
	d.Password = appendText(d.Password, r)
}

func (d *LoginDraft) Backspace() {
	if d.Focus == LoginEmail {
		d.Email = backspace(d.Email)
		return
	}
	d.Password = backspace(d.Password)
}

func (d *LoginDraft) Validate() []string {
	var msgs []string
	if strings.TrimSpace(d.Email) == "" {
		msgs = append(msgs, "Email is required")
	}
	if d.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	return msgs
}

func (d *LoginDraft) ToRequest() (models.LoginRequest, error) {
	if err := validationErr(d.Validate()); err != nil {
		return models.LoginRequest{}, err
	}
	return models.LoginRequest{Email: strings.TrimSpace(d.Email), Password: d.Password}, nil
}

type ServerField int

const (
	ServerURL ServerField = iota
	ServerAPIKey
)

func (f ServerField) Next() ServerField {
	if f == ServerURL {
		return ServerAPIKey
	}
	return ServerURL
}

func (f ServerField) Prev() ServerField { return f.Next() }

// ServerDraft edits the connection settings on the API config screen.
type ServerDraft struct {
	Focus  ServerField
	URL    string
	APIKey string
}

func NewServerDraft(url, apiKey string) *ServerDraft {
	return &ServerDraft{URL: url, APIKey: apiKey}
}

func (d *ServerDraft) NextField() { d.Focus = d.Focus.Next() }
func (d *ServerDraft) PrevField() { d.Focus = d.Focus.Prev() }

func (d *ServerDraft) Input(r rune) {
	if d.Focus == ServerURL {
		d.URL = appendText(d.URL, r)
		return
	}
	d.APIKey = appendText(d.APIKey, r)
}

func (d *ServerDraft) Backspace() {
	if d.Focus == ServerURL {
		d.URL = backspace(d.URL)
		return
	}
	d.APIKey = backspace(d.APIKey)
}

func (d *ServerDraft) Validate() []string {
	if strings.TrimSpace(d.URL) == "" {
		return []string{"Server URL is required"}
	}
	return nil
}
