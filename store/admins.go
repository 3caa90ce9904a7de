package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/olawale021/Docappointapp/models"
)

type AdminStore struct {
	col *mongo.Collection
}

func (s *AdminStore) Insert(ctx context.Context, a models.Admin) error {
	_, err := s.col.InsertOne(ctx, a)
	return wrapErr(err)
}

func (s *AdminStore) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	var a models.Admin
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&a)
	return a, wrapErr(err)
}
