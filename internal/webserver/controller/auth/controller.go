package auth

import (
	"time"

	"golang.org/x/text/message"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

type authRepository interface {
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
}

type Controller struct {
	repository authRepository
	printers   map[string]*message.Printer
	config     Config
}

type Config struct {
	Secret            []byte
	MinPasswordLength int
	Hostname          string
	Port              int
	SessionTimeout    time.Duration
}

func NewController(repository authRepository, cfg Config, printers map[string]*message.Printer) *Controller {
	return &Controller{
		repository: repository,
		printers:   printers,
		config:     cfg,
	}
}
