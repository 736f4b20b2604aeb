package holiday

import "gorm.io/gorm"

type HolidayContainer struct {
	Handler    *Handler
	Service    HolidayService
	Repository HolidayRepository
}

func NewHolidayContainer(db *gorm.DB) *HolidayContainer {
	repo := NewRepository(db)
	service := NewService(repo)

	return &HolidayContainer{
		Handler:    NewHandler(service),
		Service:    service,
		Repository: repo,
	}
}
