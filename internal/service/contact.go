package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

var (
	ErrInvalidJSON    = errors.New("Invalid JSON payload")
	ErrObjectRequired = errors.New("JSON object payload is required")
	ErrUnknownPolicy  = errors.New("unknown contact policy")
)

var contactFieldsOrder = []string{"name", "email", "subject", "message"}

// ContactPolicy controls how strictly contact submissions are validated.
type ContactPolicy string

const (
	// PolicyLenient accepts any JSON object, filling absent fields with "".
	PolicyLenient ContactPolicy = "lenient"
	// PolicyStrict rejects submissions with any empty field.
	PolicyStrict ContactPolicy = "strict"
)

// ParseContactPolicy maps a configuration value to a policy. Empty means lenient.
func ParseContactPolicy(s string) (ContactPolicy, error) {
	switch p := ContactPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PolicyLenient:
		return PolicyLenient, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// MissingFieldsError lists the fields a strict submission left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// ContactInput is a cleaned contact submission: every field trimmed, never absent.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ParseContactPayload decodes a raw request body into a ContactInput.
// Invalid UTF-8 is dropped and an empty body is treated as {}.
func ParseContactPayload(body []byte) (ContactInput, error) {
	raw := bytes.TrimSpace(bytes.ToValidUTF8(body, nil))
	if len(raw) == 0 {
		return ContactInput{}, nil
	}

	var payload any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return ContactInput{}, ErrInvalidJSON
	}
	if dec.More() {
		return ContactInput{}, ErrInvalidJSON
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return ContactInput{}, ErrObjectRequired
	}

	return ContactInput{
		Name:    cleanOptional(obj["name"]),
		Email:   cleanOptional(obj["email"]),
		Subject: cleanOptional(obj["subject"]),
		Message: cleanOptional(obj["message"]),
	}, nil
}

// cleanOptional renders any JSON value as trimmed text; null and absent become "".
func cleanOptional(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(b))
	}
}

// ContactService records messages submitted through the public contact form.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error)
}

type contactService struct {
	repo   repository.ContactRepository
	policy ContactPolicy
}

// NewContactService constructs a new ContactService applying policy to every submission.
func NewContactService(repo repository.ContactRepository, policy ContactPolicy) ContactService {
	if policy == "" {
		policy = PolicyLenient
	}
	return &contactService{repo: repo, policy: policy}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	if s.policy == PolicyStrict {
		if missing := in.missing(); len(missing) > 0 {
			return nil, &MissingFieldsError{Fields: missing}
		}
	}

	msg, err := s.repo.Create(ctx, &model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	})
	if err != nil {
		return nil, unavailable("contact message", err)
	}
	return msg, nil
}

func (in ContactInput) missing() []string {
	values := map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"subject": in.Subject,
		"message": in.Message,
	}
	var out []string
	for _, f := range contactFieldsOrder {
		if values[f] == "" {
			out = append(out, f)
		}
	}
	return out
}
