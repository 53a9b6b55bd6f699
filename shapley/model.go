package shapley

import (
	"gonum.org/v1/gonum/mat"
)

// MatrixModel is a prediction function that returns its output as a
// single-column matrix (rows = samples) instead of a flat slice — the
// shape regression heads in matrix pipelines usually produce.
type MatrixModel func(X mat.Matrix) (mat.Matrix, error)

// AdaptMatrixModel wraps a MatrixModel as a Model by flattening its n×1
// output. Any other output shape is rejected with ErrModelOutput, so the
// reduction stays explicit instead of a silent reinterpretation.
func AdaptMatrixModel(f MatrixModel) Model {
	return func(X mat.Matrix) ([]float64, error) {
		out, err := f(X)
		if err != nil {
			return nil, err
		}
		if out == nil {
			return nil, ErrModelOutput
		}
		if _, c := out.Dims(); c != 1 {
			return nil, ErrModelOutput
		}

		return mat.Col(nil, 0, out), nil
	}
}
