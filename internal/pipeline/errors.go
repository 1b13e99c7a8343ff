package pipeline

import "errors"

var (
	ErrPipeline = errors.New("invalid pipeline")
	ErrStage    = errors.New("invalid stage")
	ErrAction   = errors.New("invalid action")
)
