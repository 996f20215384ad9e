package fixture

import (
	"errors"
	"testing"

	"github.com/pion/yuvlayout/pkg/frame"
	"github.com/pion/yuvlayout/pkg/frame/frametest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	fs    afero.Fs
	store *Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
	suite.store = NewStore(suite.fs)
}

func (suite *StoreTestSuite) TestSaveAndLoadFrame() {
	l := frame.Layout{Format: frame.FormatI420, Width: 8, Height: 8}
	data := frametest.GeneratePlanar(8, 8)
	name := "fixtures/" + Name("", l)

	require.NoError(suite.T(), suite.store.Save(name, data))

	loaded, err := suite.store.LoadFrame(name, l)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), data, loaded)

	// no temporary file is left behind
	entries, err := afero.ReadDir(suite.fs, "fixtures")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), "008x008.yuv", entries[0].Name())
}

func (suite *StoreTestSuite) TestSaveReplaces() {
	require.NoError(suite.T(), suite.store.Save("a.yuv", []byte{1, 2, 3}))
	require.NoError(suite.T(), suite.store.Save("a.yuv", []byte{4}))

	data, err := suite.store.Load("a.yuv")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []byte{4}, data)
}

func (suite *StoreTestSuite) TestLoadFrameTooShort() {
	l := frame.Layout{Format: frame.FormatNV12, Width: 8, Height: 8}
	require.NoError(suite.T(), suite.store.Save("short.yuv", make([]byte, 95)))

	_, err := suite.store.LoadFrame("short.yuv", l)
	require.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, frame.ErrPreconditionViolation))
}

func (suite *StoreTestSuite) TestLoadMissing() {
	_, err := suite.store.Load("missing.yuv")
	assert.Error(suite.T(), err)
}

func (suite *StoreTestSuite) TestAppendAndLoadFrames() {
	l := frame.Layout{Format: frame.FormatNV21, Width: 4, Height: 2}
	first := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	second := []byte{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	require.NoError(suite.T(), suite.store.Append("clip.yuv", first))
	require.NoError(suite.T(), suite.store.Append("clip.yuv", second))

	frames, err := suite.store.LoadFrames("clip.yuv", l)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), [][]byte{first, second}, frames)

	require.NoError(suite.T(), suite.store.Append("clip.yuv", []byte{0}))
	_, err = suite.store.LoadFrames("clip.yuv", l)
	var ibe *frame.InsufficientBufferError
	require.True(suite.T(), errors.As(err, &ibe))
	assert.Equal(suite.T(), 36, ibe.RequiredSize)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{})
}

func TestName(t *testing.T) {
	l := frame.Layout{Format: frame.FormatI420, Width: 4, Height: 12}
	assert.Equal(t, "004x012.yuv", Name("", l))
	assert.Equal(t, "u_004x012.yuv", Name("u", l))
}
