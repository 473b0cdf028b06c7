package estimatortest

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerAnswersAndCloses(Te *testing.T) {
	srv, err := NewServer(func(req []byte) []byte {
		return append([]byte("echo:"), req...)
	})
	require.NoError(Te, err)
	defer srv.Close()

	conn, err := net.Dial("tcp", srv.Addr())
	require.NoError(Te, err)
	defer conn.Close()
	_, err = conn.Write([]byte("reactant1 (molecule/cm3) 1\n1 C 0\n\nEND\n"))
	require.NoError(Te, err)
	resp, err := io.ReadAll(conn)
	require.NoError(Te, err)
	assert.Equal(Te, "echo:reactant1 (molecule/cm3) 1\n1 C 0\n\nEND\n", string(resp))

	reqs := srv.Requests()
	require.Len(Te, reqs, 1)
	assert.Contains(Te, string(reqs[0]), "END\n")
}

func TestStatic(Te *testing.T) {
	assert.Equal(Te, []byte("canned"), Static("canned")(nil))
}
