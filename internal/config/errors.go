package config

import "errors"

var ErrUnknownCounterBackend = errors.New("unknown counter backend")
