package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/olawale021/Docappointapp/models"
)

type PatientStore struct {
	col *mongo.Collection
}

func (s *PatientStore) Insert(ctx context.Context, p models.Patient) error {
	_, err := s.col.InsertOne(ctx, p)
	return wrapErr(err)
}

func (s *PatientStore) FindByUsername(ctx context.Context, username string) (models.Patient, error) {
	var p models.Patient
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&p)
	return p, wrapErr(err)
}

func (s *PatientStore) FindByStatus(ctx context.Context, status string) ([]models.Patient, error) {
	cur, err := s.col.Find(ctx, bson.M{"registration_status": status})
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cur.Close(ctx)

	var patients []models.Patient
	if err := cur.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *PatientStore) SetRegistrationStatus(ctx context.Context, username, status string) (matched, modified int64, err error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"username": username},
		bson.M{"$set": bson.M{"registration_status": status}})
	if err != nil {
		return 0, 0, wrapErr(err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (s *PatientStore) SetImage(ctx context.Context, username, url string) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"username": username},
		bson.M{"$set": bson.M{"image_url": url}})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (s *PatientStore) Delete(ctx context.Context, username string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
