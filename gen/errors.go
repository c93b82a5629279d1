package gen

import "fmt"

// ErrNonPositive indicates a parameter that must be strictly positive.
type ErrNonPositive struct {
	Param string
	Value float64
}

func (e *ErrNonPositive) Error() string {
	return fmt.Sprintf("%s must be positive; got %v", e.Param, e.Value)
}

// ErrSizeOrder indicates min_size > max_size.
type ErrSizeOrder struct {
	MinSize float64
	MaxSize float64
}

func (e *ErrSizeOrder) Error() string {
	return fmt.Sprintf("min_size (%v) must be <= max_size (%v)", e.MinSize, e.MaxSize)
}

// ErrUnknownDistribution indicates an unrecognized spatial or size
// distribution name.
type ErrUnknownDistribution struct {
	Kind string // "spatial" or "size"
	Name string
}

func (e *ErrUnknownDistribution) Error() string {
	return fmt.Sprintf("unknown %s distribution: %q", e.Kind, e.Name)
}
