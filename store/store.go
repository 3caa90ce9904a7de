package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/olawale021/Docappointapp/models"
)

// Sentinel errors shared by every collection store. Callers match with
// errors.Is and translate into their own error taxonomy.
var (
	ErrNoDocument = errors.New("store: no matching document")
	ErrDuplicate  = errors.New("store: duplicate key")
)

// Store bundles the four collection stores behind a single handle so
// services can be wired with exactly the collections they need.
type Store struct {
	Patients     *PatientStore
	Doctors      *DoctorStore
	Admins       *AdminStore
	Appointments *AppointmentStore
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		Patients:     &PatientStore{col: db.Collection("patients")},
		Doctors:      &DoctorStore{col: db.Collection("doctors")},
		Admins:       &AdminStore{col: db.Collection("admins")},
		Appointments: &AppointmentStore{col: db.Collection("appointments")},
	}
}

// EnsureIndexes creates the indexes the booking invariants rely on. The
// partial unique index on (doctor, date, slot) is what turns a lost
// booking race into a duplicate-key error instead of a double booking;
// cancelled appointments fall outside it so their slot can be rebooked.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Appointments.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctor_username", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time_slot", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": []string{models.StatusRequested, models.StatusApproved}},
			}),
	})
	if err != nil {
		return fmt.Errorf("create appointment slot index: %w", err)
	}

	users := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for name, col := range map[string]*mongo.Collection{
		"patients": s.Patients.col,
		"doctors":  s.Doctors.col,
		"admins":   s.Admins.col,
	} {
		if _, err := col.Indexes().CreateOne(ctx, users); err != nil {
			return fmt.Errorf("create %s username index: %w", name, err)
		}
	}
	return nil
}

// wrapErr maps driver-level conditions onto the store sentinels.
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNoDocument
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}
