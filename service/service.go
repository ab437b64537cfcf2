package service

import (
	"github.com/fulldump/usersvc/database"
)

type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) CreateUser(user *database.User) int {
	if user == nil {
		user = &database.User{}
	}
	return s.db.Users.Create(user)
}

func (s *Service) GetUser(id int) (*database.User, error) {
	user, ok := s.db.Users.Get(id)
	if !ok {
		return nil, ErrorUserNotFound
	}
	return user, nil
}

func (s *Service) ReplaceUser(id int, user *database.User) error {
	if user == nil {
		user = &database.User{}
	}
	if !s.db.Users.Replace(id, user) {
		return ErrorUserNotFound
	}
	return nil
}

func (s *Service) DeleteUser(id int) error {
	if !s.db.Users.Delete(id) {
		return ErrorUserNotFound
	}
	return nil
}

func (s *Service) ListUsers() []int {
	return s.db.Users.ListIDs()
}
