package dockerfile

import "errors"

var ErrUnknownAction = errors.New("unknown action")
