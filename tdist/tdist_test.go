package tdist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gotin/tin/tdist"
)

func TestQuantileLargeDFApproachesNormal(t *testing.T) {
	// df=10000, alpha=0.05 two-sided should be close to 1.95996 (z_0.025).
	q := tdist.Quantile(10000, 0.05)
	assert.InDelta(t, 1.95996, q, 0.01)
}

func TestQuantileSmallDFWiderThanLargeDF(t *testing.T) {
	small := tdist.Quantile(3, 0.05)
	large := tdist.Quantile(1000, 0.05)
	assert.Greater(t, small, large)
}

func TestQuantileMonotonicInAlpha(t *testing.T) {
	tight := tdist.Quantile(20, 0.10)
	loose := tdist.Quantile(20, 0.01)
	assert.Less(t, tight, loose)
}
