// Package business holds the shop's own contact profile, shown on public
// pages. The profile is a singleton row.
package business

import (
	"context"
	"strings"
	"time"

	"github.com/celly/backoffice/internal/domain/shared"
)

// Profile represents the shop's contact information
type Profile struct {
	shared.BaseEntity
	Name      string `gorm:"type:varchar(100);not null"`
	Phone     string `gorm:"type:varchar(30);not null"`
	Instagram string `gorm:"type:varchar(100)"`
	Whatsapp  string `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (Profile) TableName() string {
	return "business_profiles"
}

// Placeholder returns the profile stored when none has been configured yet
func Placeholder() *Profile {
	return &Profile{
		BaseEntity: shared.NewBaseEntity(),
		Name:       "Atualize este nome",
		Phone:      "Atualize este telefone",
	}
}

// ProfilePatch holds the optional fields of a profile update
type ProfilePatch struct {
	Name      *string
	Phone     *string
	Instagram *string
	Whatsapp  *string
}

// IsEmpty returns true if the patch carries no fields
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Instagram == nil && p.Whatsapp == nil
}

// Apply applies the patch to the profile
func (pr *Profile) Apply(p ProfilePatch) error {
	if p.IsEmpty() {
		return shared.ErrEmptyPatch
	}
	if p.Name != nil {
		if strings.ReplaceAll(*p.Name, " ", "") == "" {
			return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
		}
		pr.Name = *p.Name
	}
	if p.Phone != nil {
		pr.Phone = *p.Phone
	}
	if p.Instagram != nil {
		pr.Instagram = *p.Instagram
	}
	if p.Whatsapp != nil {
		pr.Whatsapp = *p.Whatsapp
	}
	pr.UpdatedAt = time.Now()
	return nil
}

// Repository defines the interface for profile persistence
type Repository interface {
	// Find returns the singleton profile, or shared.ErrNotFound
	Find(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
}
