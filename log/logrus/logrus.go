package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/planvault/paramcache"
)

type Logger struct{ E *logrus.Entry }

var _ paramcache.Logger = Logger{}

func (l Logger) Debug(msg string, f paramcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f paramcache.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f paramcache.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f paramcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
