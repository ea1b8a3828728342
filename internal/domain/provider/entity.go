package provider

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("provider name cannot be empty")
	ErrNameTooLong  = errors.New("provider name is too long (max 255 characters)")
	ErrUserRequired = errors.New("provider must be linked to a user")
)

const MaxNameLength = 255

// Provider is the service side of a booking. It is one-to-one with a user
// identity and owns its availability slots.
type Provider struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	specialty string
	bio       string
	createdAt time.Time
	updatedAt time.Time
}

func NewProvider(userID uuid.UUID, name, specialty, bio string) (*Provider, error) {
	if userID == uuid.Nil {
		return nil, ErrUserRequired
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	return &Provider{
		id:        uuid.New(),
		userID:    userID,
		name:      name,
		specialty: strings.TrimSpace(specialty),
		bio:       strings.TrimSpace(bio),
	}, nil
}

func (p *Provider) ID() uuid.UUID        { return p.id }
func (p *Provider) UserID() uuid.UUID    { return p.userID }
func (p *Provider) Name() string         { return p.name }
func (p *Provider) Specialty() string    { return p.specialty }
func (p *Provider) Bio() string          { return p.bio }
func (p *Provider) CreatedAt() time.Time { return p.createdAt }
func (p *Provider) UpdatedAt() time.Time { return p.updatedAt }
