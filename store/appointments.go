package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/olawale021/Docappointapp/models"
)

type AppointmentStore struct {
	col *mongo.Collection
}

// Insert stores a new appointment and returns it with the generated id.
// A duplicate-key error from the slot index surfaces as ErrDuplicate.
func (s *AppointmentStore) Insert(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	res, err := s.col.InsertOne(ctx, appt)
	if err != nil {
		return models.Appointment{}, wrapErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		appt.ID = oid
	}
	return appt, nil
}

func (s *AppointmentStore) FindByID(ctx context.Context, id string) (models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Appointment{}, ErrNoDocument
	}
	var appt models.Appointment
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&appt)
	return appt, wrapErr(err)
}

func (s *AppointmentStore) FindByDoctorAndStatus(ctx context.Context, doctor, status string) ([]models.Appointment, error) {
	return s.find(ctx, bson.M{"doctor_username": doctor, "status": status})
}

func (s *AppointmentStore) FindByPatient(ctx context.Context, patient string) ([]models.Appointment, error) {
	return s.find(ctx, bson.M{"patient_username": patient})
}

func (s *AppointmentStore) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return s.find(ctx, bson.M{})
}

// CountActive counts non-cancelled appointments holding the exact
// doctor/date/slot combination.
func (s *AppointmentStore) CountActive(ctx context.Context, doctor, date, slot string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{
		"doctor_username": doctor,
		"date":            date,
		"time_slot":       slot,
		"status":          bson.M{"$in": []string{models.StatusRequested, models.StatusApproved}},
	})
}

func (s *AppointmentStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"status": status})
}

// SetStatus applies a $set on the status field and reports how many
// records matched and how many actually changed, so callers can tell
// "not found" from "no changes made".
func (s *AppointmentStore) SetStatus(ctx context.Context, id, status string) (matched, modified int64, err error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, 0, ErrNoDocument
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, 0, wrapErr(err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (s *AppointmentStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrNoDocument
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.DeletedCount, nil
}

func (s *AppointmentStore) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cur.Close(ctx)

	var appts []models.Appointment
	if err := cur.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
