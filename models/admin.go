package models

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username string             `bson:"username" json:"username" validate:"required,min=5"`
	Password string             `bson:"password" json:"password,omitempty" validate:"required"`
}

type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
