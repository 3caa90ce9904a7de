package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment lifecycle statuses. An appointment starts as requested and
// moves to approved or cancelled; cancelled records stay in the store
// until explicitly deleted.
const (
	StatusRequested = "requested"
	StatusApproved  = "approved"
	StatusCancelled = "cancelled"
)

// Registration statuses shared by patient and doctor accounts.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientUsername string             `bson:"patient_username" json:"patient_username"`
	DoctorUsername  string             `bson:"doctor_username" json:"doctor_username"`
	Date            string             `bson:"date" json:"date"`
	TimeSlot        string             `bson:"time_slot" json:"time_slot"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}
