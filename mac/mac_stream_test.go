package mac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamMatchesDirectUpdate(t *testing.T) {
	key := []byte("0123456789ABCDEF0123456789ABCDE")
	data := make([]byte, 200*1024) // spans several internal buffer flushes
	for i := range data {
		data[i] = byte(i)
	}

	direct := NewHMACSHA256()
	require.NoError(t, direct.Init(key, nil))
	require.NoError(t, direct.Update(data))
	wantTag, err := direct.Finalize()
	require.NoError(t, err)

	engine := NewHMACSHA256()
	require.NoError(t, engine.Init(key, nil))
	s := NewStream(engine)
	n, err := s.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	gotTag, err := s.Sum()
	require.NoError(t, err)

	require.Equal(t, wantTag, gotTag)
}

func TestStreamMultipleSmallWrites(t *testing.T) {
	key := []byte("another-shared-secret-key-value")

	engine := NewHMACSHA256()
	require.NoError(t, engine.Init(key, nil))
	s := NewStream(engine)
	_, _ = s.Write([]byte("hello "))
	_, _ = s.Write([]byte("world"))
	gotTag, err := s.Sum()
	require.NoError(t, err)

	ref := NewHMACSHA256()
	require.NoError(t, ref.Init(key, nil))
	require.NoError(t, ref.Update([]byte("hello world")))
	wantTag, err := ref.Finalize()
	require.NoError(t, err)

	require.Equal(t, wantTag, gotTag)
}
