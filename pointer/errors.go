package pointer

import "fmt"

type ErrDisplayInterrupt struct{}

func (e ErrDisplayInterrupt) Error() string { return "interrupt requested" }

type ErrDisplayNotInitialized struct{}

func (e ErrDisplayNotInitialized) Error() string { return "display not initialized" }

type ErrDisplayTooSmall struct {
	height, width int
}

func (e ErrDisplayTooSmall) Error() string {
	return fmt.Sprintf("%vx%v display too small must be %vx%v", e.width, e.height, minDisplayWidth, minDisplayHeight)
}

type ErrContainerNotFound struct {
	id string
}

func (e ErrContainerNotFound) Error() string {
	return fmt.Sprintf("container %q not found", e.id)
}
