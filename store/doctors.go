package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/olawale021/Docappointapp/models"
)

type DoctorStore struct {
	col *mongo.Collection
}

func (s *DoctorStore) Insert(ctx context.Context, d models.Doctor) error {
	_, err := s.col.InsertOne(ctx, d)
	return wrapErr(err)
}

func (s *DoctorStore) FindByUsername(ctx context.Context, username string) (models.Doctor, error) {
	var d models.Doctor
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&d)
	return d, wrapErr(err)
}

func (s *DoctorStore) FindByStatus(ctx context.Context, status string) ([]models.Doctor, error) {
	return s.find(ctx, bson.M{"registration_status": status})
}

// FindApproved lists the doctors a patient may book with.
func (s *DoctorStore) FindApproved(ctx context.Context) ([]models.Doctor, error) {
	return s.find(ctx, bson.M{"registration_status": models.RegistrationApproved})
}

func (s *DoctorStore) SetRegistrationStatus(ctx context.Context, username, status string) (matched, modified int64, err error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"username": username},
		bson.M{"$set": bson.M{"registration_status": status}})
	if err != nil {
		return 0, 0, wrapErr(err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// SetProfile applies the provided profile fields with field-level $set
// semantics; absent fields are left untouched.
func (s *DoctorStore) SetProfile(ctx context.Context, username string, upd models.DoctorProfileUpdate) error {
	set := bson.M{}
	if upd.Hospital != nil {
		set["hospital"] = *upd.Hospital
	}
	if upd.Specialty != nil {
		set["specialty"] = *upd.Specialty
	}
	if upd.Biography != nil {
		set["biography"] = upd.Biography
	}
	if upd.Education != nil {
		set["education"] = upd.Education
	}
	if upd.Experience != nil {
		set["experience"] = upd.Experience
	}
	if upd.RegistrationRecords != nil {
		set["registration_records"] = upd.RegistrationRecords
	}
	if len(set) == 0 {
		return nil
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": set})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (s *DoctorStore) SetImage(ctx context.Context, username, url string) error {
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

func (s *DoctorStore) Delete(ctx context.Context, username string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (s *DoctorStore) find(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer cur.Close(ctx)

	var doctors []models.Doctor
	if err := cur.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}
