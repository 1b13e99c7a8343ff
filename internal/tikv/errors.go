package tikv

import "errors"

var ErrManifest = errors.New("invalid toolchain manifest")
