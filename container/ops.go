package container

import (
	"fmt"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/storage"
	"github.com/hupe1980/unitgo/unit"
)

type elementwise func(a, b storage.Data) (storage.Data, error)

func typed[R unit.Quantity](a, b Operand, dims dimension.Vector, fn elementwise) (base[R], error) {
	if err := dimension.Check(unit.KindOf[R]().Dimensions(), dims); err != nil {
		return base[R]{}, fmt.Errorf("result %s: %w", unit.KindOf[R](), err)
	}
	d, err := fn(a.storageData(), b.storageData())
	if err != nil {
		return base[R]{}, err
	}
	return base[R]{data: d}, nil
}

// MulVector multiplies two vectors element by element into kind R, e.g.
// MulVector[unit.Area](lengths, widths). It fails with a
// *dimension.MismatchError when the product does not have R's dimensions.
// The result is displayed in R's standard unit.
func MulVector[R unit.Quantity](a, b Operand) (*Vector[R], error) {
	if err := checkVectors(a, b); err != nil {
		return nil, err
	}
	r, err := typed[R](a, b, dimension.Add(a.Dimensions(), b.Dimensions()), storage.Times)
	if err != nil {
		return nil, err
	}
	return &Vector[R]{r}, nil
}

// DivVector divides two vectors element by element into kind R.
func DivVector[R unit.Quantity](a, b Operand) (*Vector[R], error) {
	if err := checkVectors(a, b); err != nil {
		return nil, err
	}
	r, err := typed[R](a, b, dimension.Sub(a.Dimensions(), b.Dimensions()), storage.Divide)
	if err != nil {
		return nil, err
	}
	return &Vector[R]{r}, nil
}

// MulMatrix multiplies two matrices cell by cell into kind R.
func MulMatrix[R unit.Quantity](a, b Operand) (*Matrix[R], error) {
	r, err := typed[R](a, b, dimension.Add(a.Dimensions(), b.Dimensions()), storage.Times)
	if err != nil {
		return nil, err
	}
	return &Matrix[R]{r}, nil
}

// DivMatrix divides two matrices cell by cell into kind R.
func DivMatrix[R unit.Quantity](a, b Operand) (*Matrix[R], error) {
	r, err := typed[R](a, b, dimension.Sub(a.Dimensions(), b.Dimensions()), storage.Divide)
	if err != nil {
		return nil, err
	}
	return &Matrix[R]{r}, nil
}

func checkVectors(a, b Operand) error {
	if err := checkVector(a); err != nil {
		return err
	}
	return checkVector(b)
}
