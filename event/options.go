package event

import "github.com/sirupsen/logrus"

type Option func(*Adapter)

// WithEnvironment sets where FromHostEvent looks for the current event when
// no host event is passed.
func WithEnvironment(env Environment) Option {
	return func(a *Adapter) {
		a.env = env
	}
}

// WithLogger replaces the default logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}
