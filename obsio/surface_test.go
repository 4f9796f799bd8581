package obsio_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ddrelocator/obsio"
	"github.com/katalvlaran/ddrelocator/relocator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSurface_WriteReadRoundTrip dumps a real sweep surface and reloads it.
func TestSurface_WriteReadRoundTrip(t *testing.T) {
	master := seismicMaster()
	obs := seismicObs(master)

	opts := relocator.DefaultOptions()
	opts.KeepSurface = true
	res, err := relocator.Search(master, obs, relocator.GeographicRegion{
		Dlat: relocator.Axis{Start: -0.002, Stop: 0.002, Step: 0.001},
		Dlon: relocator.Axis{Start: -0.002, Stop: 0.002, Step: 0.001},
		Ddep: relocator.Axis{Start: -0.2, Stop: 0.2, Step: 0.1},
	}, opts)
	require.NoError(t, err)
	require.NotNil(t, res.Surface)

	path := filepath.Join(t.TempDir(), "surface.json.gz")
	require.NoError(t, obsio.WriteSurface(path, res.Surface))

	got, err := obsio.ReadSurface(path)
	require.NoError(t, err)
	assert.Equal(t, res.Surface, got, "surface must survive the dump byte-exactly")
}

// TestReadSurface_NotGzip rejects a plain-text file.
func TestReadSurface_NotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surface.json.gz")
	require.NoError(t, obsio.WriteObsSet(path, seismicObs(seismicMaster())))

	_, err := obsio.ReadSurface(path)
	assert.Error(t, err)
}
