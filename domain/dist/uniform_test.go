package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simlab/domain/core"
)

func TestDiscreteUniform_Validation(t *testing.T) {
	_, err := NewDiscreteUniform(5, 4)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = NewDiscreteUniform(3, 3)
	assert.NoError(t, err, "single-point range is valid")

	_, err = NewDiscreteUniform(-10, 10)
	assert.NoError(t, err)
}

func TestDiscreteUniform_PMFAndCDF(t *testing.T) {
	d, err := NewDiscreteUniform(1, 6) // a die
	require.NoError(t, err)

	for k := 1; k <= 6; k++ {
		assert.InDelta(t, 1.0/6.0, d.PMF(k), 1e-15, "k=%d", k)
	}
	assert.Equal(t, 0.0, d.PMF(0))
	assert.Equal(t, 0.0, d.PMF(7))

	assert.Equal(t, 0.0, d.CDF(0))
	assert.InDelta(t, 0.5, d.CDF(3), 1e-15)
	assert.Equal(t, 1.0, d.CDF(6))
	assert.Equal(t, 1.0, d.CDF(100))
}

func TestDiscreteUniform_Quantile(t *testing.T) {
	d, err := NewDiscreteUniform(1, 6)
	require.NoError(t, err)

	q, err := d.Quantile(0.5)
	require.NoError(t, err)
	assert.Equal(t, 3, q)

	q, err = d.Quantile(0.51)
	require.NoError(t, err)
	assert.Equal(t, 4, q)

	q, err = d.Quantile(0.999)
	require.NoError(t, err)
	assert.Equal(t, 6, q)

	_, err = d.Quantile(0)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	_, err = d.Quantile(1)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestDiscreteUniform_Moments(t *testing.T) {
	d, err := NewDiscreteUniform(1, 6)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, d.Mean(), 1e-15)
	assert.InDelta(t, 35.0/12.0, d.Variance(), 1e-15)

	single, err := NewDiscreteUniform(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, single.Mean())
	assert.Equal(t, 0.0, single.Variance())
}

func TestDiscreteUniform_NegativeRange(t *testing.T) {
	d, err := NewDiscreteUniform(-3, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.2, d.PMF(-3), 1e-15)
	assert.InDelta(t, 0.4, d.CDF(-2), 1e-15)
	assert.InDelta(t, -1.0, d.Mean(), 1e-15)

	q, err := d.Quantile(0.2)
	require.NoError(t, err)
	assert.Equal(t, -3, q)
}
