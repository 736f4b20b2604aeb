package task

import "gorm.io/gorm"

type TaskContainer struct {
	Handler *Handler
	Service TaskService
}

func NewTaskContainer(db *gorm.DB, users UserDirectory, events EventLookup) *TaskContainer {
	repo := NewRepository(db)
	service := NewService(repo, users, events)

	return &TaskContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
