package lint

import "errors"

var ErrConformance = errors.New("rendered document does not conform")
