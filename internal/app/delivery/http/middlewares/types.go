package middlewares

import (
	"esveikata-finder/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AccessLog      *logrus.Logger
	InternalConfig *config.InternalConfig
}
