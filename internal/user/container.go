package user

import "gorm.io/gorm"

type UserContainer struct {
	Handler    *Handler
	Service    UserService
	Repository UserRepository
}

func NewUserContainer(db *gorm.DB) *UserContainer {
	repo := NewUserRepository(db)
	service := NewUserService(repo)

	return &UserContainer{
		Handler:    NewHandler(service),
		Service:    service,
		Repository: repo,
	}
}
