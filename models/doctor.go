package models

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username            string             `bson:"username" json:"username" validate:"required,min=5"`
	FirstName           string             `bson:"first_name" json:"first_name" validate:"required"`
	LastName            string             `bson:"last_name" json:"last_name" validate:"required"`
	DateOfBirth         string             `bson:"date_of_birth" json:"date_of_birth" validate:"required"`
	Gender              string             `bson:"gender" json:"gender" validate:"required"`
	PhoneNumber         string             `bson:"phone_number" json:"phone_number" validate:"required,len=11,numeric"`
	Address             string             `bson:"address" json:"address" validate:"required"`
	Email               string             `bson:"email,omitempty" json:"email,omitempty"`
	ImageURL            string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Hospital            string             `bson:"hospital" json:"hospital" validate:"required"`
	Specialty           string             `bson:"specialty" json:"specialty" validate:"required"`
	Biography           []string           `bson:"biography,omitempty" json:"biography,omitempty"`
	Education           []string           `bson:"education,omitempty" json:"education,omitempty"`
	Experience          []string           `bson:"experience,omitempty" json:"experience,omitempty"`
	RegistrationRecords []string           `bson:"registration_records,omitempty" json:"registration_records,omitempty"`
	Password            string             `bson:"password" json:"password,omitempty" validate:"required"`
	RegistrationStatus  string             `bson:"registration_status" json:"registration_status"`
}

// FullName concatenates first and last name for display.
func (d Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// DoctorProfileUpdate carries the free-form profile fields a doctor may
// edit after registration. Nil slices are left untouched.
type DoctorProfileUpdate struct {
	Hospital            *string  `json:"hospital,omitempty"`
	Specialty           *string  `json:"specialty,omitempty"`
	Biography           []string `json:"biography,omitempty"`
	Education           []string `json:"education,omitempty"`
	Experience          []string `json:"experience,omitempty"`
	RegistrationRecords []string `json:"registration_records,omitempty"`
}

type DoctorClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
