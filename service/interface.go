package service

import (
	"errors"

	"github.com/fulldump/usersvc/database"
)

var ErrorUserNotFound = errors.New("user not found")

type Servicer interface {
	CreateUser(user *database.User) int
	GetUser(id int) (*database.User, error)
	ReplaceUser(id int, user *database.User) error
	DeleteUser(id int) error
	ListUsers() []int
}
