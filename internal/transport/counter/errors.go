package counter

import "errors"

var ErrUnexpectedStatus = errors.New("counter service answered with unexpected status")
