package service

import (
	"github.com/sirupsen/logrus"
)

type Service struct {
	Log *logrus.Entry
}
