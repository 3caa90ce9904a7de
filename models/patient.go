package models

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username           string             `bson:"username" json:"username" validate:"required,min=5"`
	FirstName          string             `bson:"first_name" json:"first_name" validate:"required"`
	LastName           string             `bson:"last_name" json:"last_name" validate:"required"`
	DateOfBirth        string             `bson:"date_of_birth" json:"date_of_birth" validate:"required"`
	Gender             string             `bson:"gender" json:"gender" validate:"required"`
	PhoneNumber        string             `bson:"phone_number" json:"phone_number" validate:"required"`
	Address            string             `bson:"address" json:"address" validate:"required"`
	Email              string             `bson:"email,omitempty" json:"email,omitempty"`
	BloodGroup         string             `bson:"blood_group,omitempty" json:"blood_group,omitempty"`
	ImageURL           string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Password           string             `bson:"password" json:"password,omitempty" validate:"required"`
	RegistrationStatus string             `bson:"registration_status" json:"registration_status"`
}

// FullName concatenates first and last name for display.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

type PatientClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
