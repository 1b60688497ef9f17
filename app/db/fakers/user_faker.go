package fakers

import (
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/velamart/catalog-admin/app/helpers"
	"github.com/velamart/catalog-admin/app/models"
)

func UserFaker(role string) *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Phone:     faker.Phonenumber(),
		Password:  helpers.HashPassword("password"),
		Role:      role,
	}
}
