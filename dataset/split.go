package dataset

import (
	"math"

	"github.com/pkg/errors"
)

// TrainTestSplit partitions features and target into train and test halves.
// The test partition takes round(n * testRatio) rows from the end, the train
// partition the rest from the front, in whatever order the inputs currently
// hold. The split itself never randomizes; shuffle the Dataset first for a
// randomized partition.
func TrainTestSplit(features *Table, target *Series, testRatio float64) (
	xTrain, xTest *Table, yTrain, yTest *Series, err error,
) {
	if math.IsNaN(testRatio) || testRatio < 0.0 || testRatio > 1.0 {
		return nil, nil, nil, nil,
			errors.Wrapf(ErrInvalidArgument, "test ratio %v must be within [0, 1]", testRatio)
	}
	n := features.Height()
	if target.Len() != n {
		return nil, nil, nil, nil, errors.Wrapf(ErrInvalidArgument,
			"features have %d rows but target has %d", n, target.Len())
	}

	testSize := int(math.Round(float64(n) * testRatio))
	if testSize > n {
		testSize = n
	}
	trainSize := n - testSize

	if xTrain, err = features.Slice(0, trainSize); err != nil {
		return nil, nil, nil, nil, err
	}
	if xTest, err = features.Slice(trainSize, testSize); err != nil {
		return nil, nil, nil, nil, err
	}
	if yTrain, err = target.Slice(0, trainSize); err != nil {
		return nil, nil, nil, nil, err
	}
	if yTest, err = target.Slice(trainSize, testSize); err != nil {
		return nil, nil, nil, nil, err
	}
	return xTrain, xTest, yTrain, yTest, nil
}
